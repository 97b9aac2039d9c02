package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Anuja-3248/VitaGaurd/pkg/cli"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/repository/file"
	"github.com/Anuja-3248/VitaGaurd/pkg/usecase"
)

func runApp(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := cli.NewApp("test")
	app.Writer = &buf
	app.ErrWriter = &bytes.Buffer{}

	full := []string{"vitaguard", "--log-level", "error", "reminder",
		"--repository-backend", "file",
		"--data-dir", dir,
		"--user-id", "alice",
	}
	full = append(full, args...)
	err := app.Run(context.Background(), full)
	return buf.String(), err
}

func TestReminderCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := runApp(t, dir, "add", "--title", "Checkup", "--time", "09:00")
	gt.NoError(t, err).Required()
	id := strings.TrimSpace(out)
	gt.String(t, id).NotEqual("")

	_, err = runApp(t, dir, "add", "--title", "Vitals", "--time", "21:30", "--type", "vital", "--frequency", "Custom")
	gt.NoError(t, err).Required()

	out, err = runApp(t, dir, "list")
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("Checkup")
	gt.String(t, out).Contains("9:00 AM")
	gt.String(t, out).Contains("Mon,Wed,Fri")
	gt.String(t, out).Contains("2 ONLINE")
	gt.Bool(t, strings.Index(out, "Checkup") < strings.Index(out, "Vitals")).True()

	out, err = runApp(t, dir, "toggle", id)
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("off")

	out, err = runApp(t, dir, "list")
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("1 ONLINE")

	_, err = runApp(t, dir, "delete", id)
	gt.NoError(t, err).Required()
	_, err = runApp(t, dir, "delete", id)
	gt.NoError(t, err).Required()

	out, err = runApp(t, dir, "list")
	gt.NoError(t, err).Required()
	gt.Bool(t, strings.Contains(out, "Checkup")).False()
}

func TestReminderCommandErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("invalid time", func(t *testing.T) {
		_, err := runApp(t, dir, "add", "--title", "Checkup", "--time", "9:00")
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})

	t.Run("toggle unknown", func(t *testing.T) {
		_, err := runApp(t, dir, "toggle", "missing")
		gt.Bool(t, errors.Is(err, usecase.ErrReminderNotFound)).True()
	})

	t.Run("toggle without id", func(t *testing.T) {
		_, err := runApp(t, dir, "toggle")
		gt.Value(t, err).NotNil()
	})
}

func TestReminderSetsCommand(t *testing.T) {
	dir := t.TempDir()

	_, err := runApp(t, dir, "add", "--title", "Checkup", "--time", "09:00")
	gt.NoError(t, err).Required()

	repo, err := file.New(dir)
	gt.NoError(t, err).Required()
	gt.NoError(t, repo.Reminder().WriteAll(context.Background(), model.StorageKeyFor("bob"), []*model.Reminder{})).Required()

	out, err := runApp(t, dir, "sets")
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("reminders_alice")
	gt.String(t, out).Contains("reminders_bob")
	gt.Bool(t, strings.Index(out, "reminders_bob") < strings.Index(out, "reminders_alice")).True()

	out, err = runApp(t, dir, "sets", "--limit", "1")
	gt.NoError(t, err).Required()
	gt.String(t, out).Contains("reminders_bob")
	gt.Bool(t, strings.Contains(out, "reminders_alice")).False()
}

func TestGetIndexConfig(t *testing.T) {
	cfg := cli.GetIndexConfig("")
	gt.Array(t, cfg.Collections).Length(1).Required()
	gt.Value(t, cfg.Collections[0].Name).Equal("reminder_sets")

	cfg = cli.GetIndexConfig("staging")
	gt.Value(t, cfg.Collections[0].Name).Equal("staging_reminder_sets")
}
