// Package file stores each reminder set as a JSON document in a local directory,
// one file per storage key.
package file

import (
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
)

type File struct {
	reminder *reminderRepository
}

var _ interfaces.Repository = &File{}

// New prepares dir (creating it if needed) and returns a repository rooted there
func New(dir string) (*File, error) {
	if dir == "" {
		return nil, goerr.New("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, goerr.Wrap(err, "failed to create data directory", goerr.V("dir", dir))
	}

	return &File{
		reminder: newReminderRepository(dir),
	}, nil
}

func (f *File) Reminder() interfaces.ReminderRepository {
	return f.reminder
}

func (f *File) Close() error {
	return nil
}
