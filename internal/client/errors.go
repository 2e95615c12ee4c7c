package client

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/service"
)

var (
	ErrUsage            = errors.New("usage")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// ErrorMessage returns the text to print for an error returned by Run.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrUsage):
		return err.Error() + "\n" + usage
	case errors.Is(err, ErrPasswordMismatch):
		return ErrPasswordMismatch.Error()
	default:
		return service.UserMessage(err)
	}
}
