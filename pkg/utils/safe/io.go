package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/sesmt-lab/psicorisk/pkg/utils/logging"
)

// Close closes an io.Closer and logs any error instead of returning it.
// Nil closers are ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Error("Failed to close", slog.Any("error", err))
	}
}
