package safe

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/Anuja-3248/VitaGaurd/pkg/utils/logging"
)

// Close closes an io.Closer and logs any error instead of returning it.
// A nil closer is ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}

// Write writes data to w and logs any error. A nil writer is ignored.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	if _, err := w.Write(data); err != nil {
		logging.From(ctx).Error("Failed to write", slog.Any("error", err))
	}
}

// Remove deletes path and logs failures other than the file being absent
func Remove(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logging.From(ctx).Warn("Failed to remove", slog.String("path", path), slog.Any("error", err))
	}
}
