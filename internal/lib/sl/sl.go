package sl

import (
	"log/slog"
)

// Err lets slog attributes carry an error as-is.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
