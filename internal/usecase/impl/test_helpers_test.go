package impl

import (
	"io"
	"log/slog"
)

const testMinPasswordLength = 6

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
