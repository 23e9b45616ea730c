package validators

import (
	"errors"
	"log/slog"
)

// Warn reports a validation failure through the given logger at warn level.
// It is a no-op for nil loggers, nil errors, and errors that are not
// validation failures, so callers can pass Check results through unchecked.
func Warn(log *slog.Logger, err error) {
	if log == nil || err == nil {
		return
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		return
	}
	log.Warn(verr.Message)
}
