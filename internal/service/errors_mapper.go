// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

// UserMessage translates an error returned by [VaultService] into the text a
// front end shows to the user. Causes wrapped inside the sentinels are not
// exposed.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrWrongPasswordOrCorrupt):
		return app.MsgWrongPasswordOrCorrupt
	case errors.Is(err, ErrCorruptStructure):
		return app.MsgCorruptStructure
	case errors.Is(err, ErrEntryNotFound):
		return app.MsgEntryNotFound
	case errors.Is(err, ErrInvalidInput):
		return app.MsgInvalidInput
	case errors.Is(err, ErrVersionConflict):
		return app.MsgVersionConflict
	case errors.Is(err, ErrStorage):
		return app.MsgStorageError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return app.MsgCanceled
	default:
		return app.MsgInternalError
	}
}
