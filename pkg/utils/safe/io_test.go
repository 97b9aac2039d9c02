package safe_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Anuja-3248/VitaGaurd/pkg/utils/safe"
)

type closeCounter struct {
	calls int
	err   error
}

func (c *closeCounter) Close() error {
	c.calls++
	return c.err
}

func TestClose(t *testing.T) {
	ctx := context.Background()

	c := &closeCounter{err: errors.New("boom")}
	safe.Close(ctx, c)
	gt.Value(t, c.calls).Equal(1)

	// nil closer must not panic
	safe.Close(ctx, nil)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	safe.Write(context.Background(), &buf, []byte("alert"))
	gt.Value(t, buf.String()).Equal("alert")

	safe.Write(context.Background(), nil, []byte("ignored"))
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/tmp.json"
	gt.NoError(t, os.WriteFile(path, []byte("{}"), 0o600)).Required()

	safe.Remove(context.Background(), path)
	_, err := os.Stat(path)
	gt.Bool(t, os.IsNotExist(err)).True()

	// removing again is silent
	safe.Remove(context.Background(), path)
}
