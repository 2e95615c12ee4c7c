// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryCodec keeps vaults in memory and hands out opaque handles as blobs.
// It checks the password like the real codec but skips key derivation.
type memoryCodec struct {
	mu     sync.Mutex
	next   int
	sealed map[string]sealedVault
}

type sealedVault struct {
	password string
	entries  models.Vault
}

func newMemoryCodec() *memoryCodec {
	return &memoryCodec{sealed: make(map[string]sealedVault)}
}

func (c *memoryCodec) Encrypt(v models.Vault, password string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.next++
	handle := "blob-" + strconv.Itoa(c.next)
	c.sealed[handle] = sealedVault{password: password, entries: maps.Clone(v)}
	return []byte(handle), nil
}

func (c *memoryCodec) Decrypt(blob []byte, password string) (models.Vault, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sv, ok := c.sealed[string(blob)]
	if !ok || sv.password != password {
		return nil, vault.ErrWrongPasswordOrCorrupt
	}
	out := maps.Clone(sv.entries)
	if out == nil {
		out = models.NewVault()
	}
	return out, nil
}

func newTestService(t *testing.T) (VaultService, *store.FileVaultStorage) {
	t.Helper()
	fs, err := store.NewFileVaultStorage(filepath.Join(t.TempDir(), "vaults"), logger.Nop())
	require.NoError(t, err)
	return NewVaultService(fs, newMemoryCodec(), logger.Nop()), fs
}

var (
	alice   = models.AccountIdentity(1)
	github  = models.VaultEntry{Name: "github", Username: "alice", Secret: "Tr0ub4dor&3", Description: "work"}
	testCtx = context.Background()
)

func TestVaultService_EndToEndWithRealCodec(t *testing.T) {
	fs, err := store.NewFileVaultStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	codec, err := vault.NewCodec(crypto.FormatV1)
	require.NoError(t, err)
	svc := NewVaultService(fs, codec, logger.Nop())

	require.NoError(t, svc.PutEntry(testCtx, models.DefaultIdentity, "A", github))

	got, err := svc.GetEntry(testCtx, models.DefaultIdentity, "A", "github")
	require.NoError(t, err)
	assert.Equal(t, github, got)

	_, err = svc.ListEntries(testCtx, models.DefaultIdentity, "B")
	assert.ErrorIs(t, err, ErrWrongPasswordOrCorrupt)
}

func TestVaultService_AbsentVaultListsEmpty(t *testing.T) {
	svc, fs := newTestService(t)

	entries, err := svc.ListEntries(testCtx, alice, "pw")
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, found, err := fs.Load(testCtx, alice)
	require.NoError(t, err)
	assert.False(t, found, "listing must not create a vault")
}

func TestVaultService_PutGetList(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.PutEntry(testCtx, alice, "pw", github))
	require.NoError(t, svc.PutEntry(testCtx, alice, "pw", models.VaultEntry{Name: "  bank ", Username: "a", Secret: "s"}))

	got, err := svc.GetEntry(testCtx, alice, "pw", "github")
	require.NoError(t, err)
	assert.Equal(t, github, got)

	got, err = svc.GetEntry(testCtx, alice, "pw", " bank")
	require.NoError(t, err)
	assert.Equal(t, "bank", got.Name)

	entries, err := svc.ListEntries(testCtx, alice, "pw")
	require.NoError(t, err)
	assert.Equal(t, []models.EntrySummary{
		{Name: "bank", Username: "a"},
		{Name: "github", Username: "alice", Description: "work"},
	}, entries)
}

func TestVaultService_PutReplaces(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.PutEntry(testCtx, alice, "pw", github))
	updated := github
	updated.Secret = "new-secret"
	require.NoError(t, svc.PutEntry(testCtx, alice, "pw", updated))

	got, err := svc.GetEntry(testCtx, alice, "pw", "github")
	require.NoError(t, err)
	assert.Equal(t, "new-secret", got.Secret)

	entries, err := svc.ListEntries(testCtx, alice, "pw")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestVaultService_GetMissing(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.PutEntry(testCtx, alice, "pw", github))

	_, err := svc.GetEntry(testCtx, alice, "pw", "gitlab")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestVaultService_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.PutEntry(testCtx, alice, "A", github))

	_, err := svc.ListEntries(testCtx, alice, "B")
	assert.ErrorIs(t, err, ErrWrongPasswordOrCorrupt)

	err = svc.PutEntry(testCtx, alice, "B", models.VaultEntry{Name: "x", Secret: "y"})
	assert.ErrorIs(t, err, ErrWrongPasswordOrCorrupt)

	entries, err := svc.ListEntries(testCtx, alice, "A")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "failed put must leave the vault untouched")
}

func TestVaultService_IdentitiesAreIsolated(t *testing.T) {
	svc, _ := newTestService(t)
	bob := models.AccountIdentity(2)

	require.NoError(t, svc.PutEntry(testCtx, alice, "pw", github))

	entries, err := svc.ListEntries(testCtx, bob, "pw")
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = svc.ListEntries(testCtx, models.DefaultIdentity, "pw")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVaultService_Delete(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.PutEntry(testCtx, alice, "pw", github))

	deleted, err := svc.DeleteEntry(testCtx, alice, "pw", "github")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetEntry(testCtx, alice, "pw", "github")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	deleted, err = svc.DeleteEntry(testCtx, alice, "pw", "github")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestVaultService_DeleteMissingDoesNotSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	codec := mock.NewMockVaultCodec(ctrl)

	storage.EXPECT().Load(gomock.Any(), alice).Return(models.VaultBlob{Data: []byte("blob"), Version: "3"}, true, nil)
	codec.EXPECT().Decrypt([]byte("blob"), "pw").Return(models.Vault{"github": github}, nil)

	svc := NewVaultService(storage, codec, logger.Nop())
	deleted, err := svc.DeleteEntry(testCtx, alice, "pw", "gitlab")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestVaultService_InvalidInputRejectedBeforeIO(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	codec := mock.NewMockVaultCodec(ctrl)
	svc := NewVaultService(storage, codec, logger.Nop())

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "empty password",
			call: func() error { _, err := svc.ListEntries(testCtx, alice, ""); return err },
		},
		{
			name: "bad account id",
			call: func() error { _, err := svc.ListEntries(testCtx, models.AccountIdentity(0), "pw"); return err },
		},
		{
			name: "blank name on get",
			call: func() error { _, err := svc.GetEntry(testCtx, alice, "pw", "  "); return err },
		},
		{
			name: "blank name on put",
			call: func() error {
				return svc.PutEntry(testCtx, alice, "pw", models.VaultEntry{Name: " ", Secret: "s"})
			},
		},
		{
			name: "empty secret on put",
			call: func() error { return svc.PutEntry(testCtx, alice, "pw", models.VaultEntry{Name: "n"}) },
		},
		{
			name: "blank name on delete",
			call: func() error { _, err := svc.DeleteEntry(testCtx, alice, "pw", ""); return err },
		},
		{
			name: "empty new password",
			call: func() error { return svc.ChangePassword(testCtx, alice, "pw", "") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), ErrInvalidInput)
		})
	}
}

func TestVaultService_StorageErrors(t *testing.T) {
	storageErr := fmt.Errorf("%w: disk on fire", store.ErrStorage)

	t.Run("load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mock.NewMockVaultStorage(ctrl)
		storage.EXPECT().Load(gomock.Any(), alice).Return(models.VaultBlob{}, false, storageErr)

		svc := NewVaultService(storage, mock.NewMockVaultCodec(ctrl), logger.Nop())
		_, err := svc.ListEntries(testCtx, alice, "pw")
		assert.ErrorIs(t, err, ErrStorage)
	})

	t.Run("save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mock.NewMockVaultStorage(ctrl)
		codec := mock.NewMockVaultCodec(ctrl)

		storage.EXPECT().Load(gomock.Any(), alice).Return(models.VaultBlob{}, false, nil)
		codec.EXPECT().Encrypt(gomock.Any(), "pw").Return([]byte("sealed"), nil)
		storage.EXPECT().Save(gomock.Any(), alice, []byte("sealed"), "").Return("", storageErr)

		svc := NewVaultService(storage, codec, logger.Nop())
		err := svc.PutEntry(testCtx, alice, "pw", github)
		assert.ErrorIs(t, err, ErrStorage)
	})

	t.Run("encrypt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storage := mock.NewMockVaultStorage(ctrl)
		codec := mock.NewMockVaultCodec(ctrl)
		encErr := errors.New("rng failure")

		storage.EXPECT().Load(gomock.Any(), alice).Return(models.VaultBlob{}, false, nil)
		codec.EXPECT().Encrypt(gomock.Any(), "pw").Return(nil, encErr)

		svc := NewVaultService(storage, codec, logger.Nop())
		err := svc.PutEntry(testCtx, alice, "pw", github)
		assert.ErrorIs(t, err, encErr)
	})
}

func TestVaultService_SavesAgainstLoadedVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	codec := mock.NewMockVaultCodec(ctrl)

	storage.EXPECT().Load(gomock.Any(), alice).Return(models.VaultBlob{Data: []byte("old"), Version: "7"}, true, nil)
	codec.EXPECT().Decrypt([]byte("old"), "pw").Return(models.NewVault(), nil)
	codec.EXPECT().Encrypt(models.Vault{"github": github}, "pw").Return([]byte("new"), nil)
	storage.EXPECT().Save(gomock.Any(), alice, []byte("new"), "7").
		Return("", fmt.Errorf("%w: vault changed", store.ErrVersionConflict))

	svc := NewVaultService(storage, codec, logger.Nop())
	err := svc.PutEntry(testCtx, alice, "pw", github)
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestVaultService_DecryptErrorsPassThrough(t *testing.T) {
	for _, want := range []error{vault.ErrWrongPasswordOrCorrupt, vault.ErrCorruptStructure} {
		t.Run(want.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			storage := mock.NewMockVaultStorage(ctrl)
			codec := mock.NewMockVaultCodec(ctrl)

			storage.EXPECT().Load(gomock.Any(), alice).Return(models.VaultBlob{Data: []byte("x"), Version: "1"}, true, nil)
			codec.EXPECT().Decrypt([]byte("x"), "pw").Return(nil, want)

			svc := NewVaultService(storage, codec, logger.Nop())
			_, err := svc.GetEntry(testCtx, alice, "pw", "github")
			assert.ErrorIs(t, err, want)
		})
	}
}

func TestVaultService_ConcurrentPutsAreNotLost(t *testing.T) {
	svc, _ := newTestService(t)
	const writers = 16

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.PutEntry(testCtx, alice, "pw", models.VaultEntry{
				Name:   "entry-" + strconv.Itoa(i),
				Secret: "s",
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	entries, err := svc.ListEntries(testCtx, alice, "pw")
	require.NoError(t, err)
	assert.Len(t, entries, writers)
}

func TestVaultService_ChangePassword(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.PutEntry(testCtx, alice, "old", github))

	require.NoError(t, svc.ChangePassword(testCtx, alice, "old", "new"))

	_, err := svc.ListEntries(testCtx, alice, "old")
	assert.ErrorIs(t, err, ErrWrongPasswordOrCorrupt)

	got, err := svc.GetEntry(testCtx, alice, "new", "github")
	require.NoError(t, err)
	assert.Equal(t, github, got)
}

func TestVaultService_ChangePasswordWrongOld(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.PutEntry(testCtx, alice, "old", github))

	err := svc.ChangePassword(testCtx, alice, "wrong", "new")
	assert.ErrorIs(t, err, ErrWrongPasswordOrCorrupt)

	_, err = svc.ListEntries(testCtx, alice, "old")
	assert.NoError(t, err)
}

func TestVaultService_ChangePasswordAbsentVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	storage.EXPECT().Load(gomock.Any(), alice).Return(models.VaultBlob{}, false, nil)

	svc := NewVaultService(storage, mock.NewMockVaultCodec(ctrl), logger.Nop())
	assert.NoError(t, svc.ChangePassword(testCtx, alice, "old", "new"))
}

func TestVaultService_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockVaultStorage(ctrl)
	storage.EXPECT().Load(gomock.Any(), alice).Return(models.VaultBlob{Data: []byte("x"), Version: "1"}, true, nil)

	ctx, cancel := context.WithCancel(testCtx)
	cancel()

	svc := NewVaultService(storage, mock.NewMockVaultCodec(ctrl), logger.Nop())
	_, err := svc.ListEntries(ctx, alice, "pw")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVaultService_CanceledWhileWaitingForLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewVaultService(mock.NewMockVaultStorage(ctrl), mock.NewMockVaultCodec(ctrl), logger.Nop()).(*vaultService)

	unlock, err := svc.locks.lock(testCtx, alice.String())
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithCancel(testCtx)
	cancel()

	err = svc.PutEntry(ctx, alice, "pw", github)
	assert.ErrorIs(t, err, context.Canceled)
}
