package vault

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// EntryRepository is CRUD over one decrypted vault. It does no I/O and is not
// safe for concurrent use; callers serialize access per identity.
type EntryRepository struct {
	entries models.Vault
}

// NewEntryRepository wraps v. A nil vault is treated as empty.
func NewEntryRepository(v models.Vault) *EntryRepository {
	if v == nil {
		v = models.NewVault()
	}
	return &EntryRepository{entries: v}
}

// List returns every entry without its secret, sorted by name.
func (r *EntryRepository) List() []models.EntrySummary {
	names := slices.Sorted(maps.Keys(r.entries))

	out := make([]models.EntrySummary, 0, len(names))
	for _, name := range names {
		out = append(out, r.entries[name].Summary())
	}
	return out
}

func (r *EntryRepository) Get(name string) (models.VaultEntry, error) {
	name = strings.TrimSpace(name)
	entry, ok := r.entries[name]
	if !ok {
		return models.VaultEntry{}, fmt.Errorf("%w: %q", ErrEntryNotFound, name)
	}
	return entry, nil
}

// Put inserts entry or replaces the one with the same name.
func (r *EntryRepository) Put(entry models.VaultEntry) error {
	entry = entry.Normalize()
	if err := validators.ValidateEntry(entry); err != nil {
		return err
	}
	r.entries[entry.Name] = entry
	return nil
}

// Delete removes the named entry and reports whether it existed.
func (r *EntryRepository) Delete(name string) bool {
	name = strings.TrimSpace(name)
	if _, ok := r.entries[name]; !ok {
		return false
	}
	delete(r.entries, name)
	return true
}

func (r *EntryRepository) Len() int {
	return len(r.entries)
}

// Vault returns the underlying map, including any changes made through r.
func (r *EntryRepository) Vault() models.Vault {
	return r.entries
}
