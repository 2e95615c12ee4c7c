package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	FieldName     = "name"
	FieldSecret   = "secret"
	FieldPassword = "password"
	FieldIdentity = "identity"
)

// Password is a master password handed to the vault engine. It exists so the
// validator can tell it apart from other strings.
type Password string

type EntryValidator struct{}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultEntry:
		return v.validateEntry(value, fields...)
	case *models.VaultEntry:
		return v.validateEntry(*value, fields...)

	case Password:
		return v.validatePassword(value, fields...)

	case models.Identity:
		return v.validateIdentity(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateEntry checks an entry after trimming. Default fields: name, secret.
func (v *EntryValidator) validateEntry(entry models.VaultEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSecret}
	}

	entry = entry.Normalize()
	for _, f := range fields {
		switch f {
		case FieldName:
			if entry.Name == "" {
				return ErrEmptyEntryName
			}
		case FieldSecret:
			if entry.Secret == "" {
				return ErrEmptySecret
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntryValidator) validatePassword(password Password, fields ...string) error {
	for _, f := range fields {
		if f != FieldPassword {
			return ErrUnknownField
		}
	}
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (v *EntryValidator) validateIdentity(identity models.Identity, fields ...string) error {
	for _, f := range fields {
		if f != FieldIdentity {
			return ErrUnknownField
		}
	}
	if id, ok := identity.AccountID(); ok && id <= 0 {
		return ErrInvalidAccountID
	}
	return nil
}

// ValidateEntry checks that a trimmed entry has a name and a secret.
func ValidateEntry(entry models.VaultEntry) error {
	return (&EntryValidator{}).validateEntry(entry)
}

// ValidateEntryName rejects names that are empty once trimmed.
func ValidateEntryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyEntryName
	}
	return nil
}
