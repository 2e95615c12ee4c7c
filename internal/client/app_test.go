// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// scriptedPrompter answers prompts in order.
type scriptedPrompter struct {
	answers []string
	prompts []string
}

func (p *scriptedPrompter) ReadPassword(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return "", errors.New("no more answers")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

type fakeClipboard struct {
	mu   sync.Mutex
	text string
}

func (f *fakeClipboard) ReadAll() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text, nil
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
	return nil
}

type testApp struct {
	app   *App
	vault *mock.MockVaultService
	board *fakeClipboard
	out   *bytes.Buffer
}

func newTestApp(t *testing.T, cfg *config.StructuredConfig, answers ...string) testApp {
	t.Helper()
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	board := &fakeClipboard{}
	out := &bytes.Buffer{}

	if cfg == nil {
		cfg = &config.StructuredConfig{}
	}
	app, err := NewApp(vault, &scriptedPrompter{answers: answers}, clipboard.NewClearer(board), cfg, out, logger.Nop())
	require.NoError(t, err)

	return testApp{app: app, vault: vault, board: board, out: out}
}

var github = models.VaultEntry{Name: "github", Username: "alice", Secret: "Tr0ub4dor&3", Description: "work"}

func TestNewApp_NilConfig(t *testing.T) {
	_, err := NewApp(nil, nil, nil, nil, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Usage(t *testing.T) {
	ta := newTestApp(t, nil)

	for _, args := range [][]string{
		nil,
		{"frobnicate"},
		{"list", "extra"},
		{"get"},
		{"get", "a", "b"},
		{"put", "-bogus", "x"},
		{"delete"},
		{"passwd", "x"},
	} {
		err := ta.app.Run(context.Background(), args)
		assert.ErrorIs(t, err, ErrUsage, "args %v", args)
		assert.Contains(t, ErrorMessage(err), "usage: vaultctl")
	}
}

func TestApp_List(t *testing.T) {
	ta := newTestApp(t, nil, "pw")
	ta.vault.EXPECT().ListEntries(gomock.Any(), models.DefaultIdentity, "pw").Return([]models.EntrySummary{
		github.Summary(),
		{Name: "bank", Username: "a"},
	}, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"list"}))

	out := ta.out.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "github")
	assert.Contains(t, out, "bank")
	assert.NotContains(t, out, github.Secret)
}

func TestApp_ListEmptyUsesAccount(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{AccountID: 42}}
	ta := newTestApp(t, cfg, "pw")
	ta.vault.EXPECT().ListEntries(gomock.Any(), models.AccountIdentity(42), "pw").Return(nil, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"list"}))
	assert.Equal(t, "vault is empty\n", ta.out.String())
}

func TestApp_Get(t *testing.T) {
	ta := newTestApp(t, nil, "pw")
	ta.vault.EXPECT().GetEntry(gomock.Any(), models.DefaultIdentity, "pw", "github").Return(github, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"get", "github"}))
	assert.Contains(t, ta.out.String(), "password:    Tr0ub4dor&3")
}

func TestApp_GetCopyClearsClipboard(t *testing.T) {
	cfg := &config.StructuredConfig{Clipboard: config.Clipboard{ClearAfter: 10 * time.Millisecond}}
	ta := newTestApp(t, cfg, "pw")
	ta.vault.EXPECT().GetEntry(gomock.Any(), models.DefaultIdentity, "pw", "github").Return(github, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"get", "github", "-copy"}))

	assert.NotContains(t, ta.out.String(), github.Secret)
	assert.Contains(t, ta.out.String(), "clearing in 10ms")
	text, _ := ta.board.ReadAll()
	assert.Empty(t, text)
}

func TestApp_GetCopyWithoutClear(t *testing.T) {
	ta := newTestApp(t, nil, "pw")
	ta.vault.EXPECT().GetEntry(gomock.Any(), models.DefaultIdentity, "pw", "github").Return(github, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"get", "-copy", "github"}))

	text, _ := ta.board.ReadAll()
	assert.Equal(t, github.Secret, text)
}

func TestApp_GetError(t *testing.T) {
	ta := newTestApp(t, nil, "pw")
	ta.vault.EXPECT().GetEntry(gomock.Any(), models.DefaultIdentity, "pw", "gitlab").Return(models.VaultEntry{}, service.ErrEntryNotFound)

	err := ta.app.Run(context.Background(), []string{"get", "gitlab"})
	assert.ErrorIs(t, err, service.ErrEntryNotFound)
	assert.Equal(t, "entry not found", ErrorMessage(err))
}

func TestApp_Put(t *testing.T) {
	ta := newTestApp(t, nil, "pw", "Tr0ub4dor&3")
	ta.vault.EXPECT().PutEntry(gomock.Any(), models.DefaultIdentity, "pw", github).Return(nil)

	err := ta.app.Run(context.Background(), []string{"put", "github", "-user", "alice", "-description", "work"})
	require.NoError(t, err)
	assert.Equal(t, "entry \"github\" saved\n", ta.out.String())
}

func TestApp_Delete(t *testing.T) {
	ta := newTestApp(t, nil, "pw", "pw")
	gomock.InOrder(
		ta.vault.EXPECT().DeleteEntry(gomock.Any(), models.DefaultIdentity, "pw", "github").Return(true, nil),
		ta.vault.EXPECT().DeleteEntry(gomock.Any(), models.DefaultIdentity, "pw", "github").Return(false, nil),
	)

	require.NoError(t, ta.app.Run(context.Background(), []string{"delete", "github"}))
	require.NoError(t, ta.app.Run(context.Background(), []string{"delete", "github"}))
	assert.Equal(t, "entry \"github\" deleted\nentry \"github\" does not exist\n", ta.out.String())
}

func TestApp_Passwd(t *testing.T) {
	ta := newTestApp(t, nil, "old", "new", "new")
	ta.vault.EXPECT().ChangePassword(gomock.Any(), models.DefaultIdentity, "old", "new").Return(nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"passwd"}))
	assert.Equal(t, "master password changed\n", ta.out.String())
}

func TestApp_PasswdMismatch(t *testing.T) {
	ta := newTestApp(t, nil, "old", "new", "typo")

	err := ta.app.Run(context.Background(), []string{"passwd"})
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Equal(t, "passwords do not match", ErrorMessage(err))
}

func TestApp_PromptError(t *testing.T) {
	ta := newTestApp(t, nil)

	err := ta.app.Run(context.Background(), []string{"list"})
	assert.Error(t, err)
}
