package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

const usage = `usage: vaultctl [flags] <command> [args]

commands:
  list                                      list entries without secrets
  get <name> [-copy]                        show an entry or copy its secret
  put <name> [-user u] [-description d]     add or replace an entry
  delete <name>                             remove an entry
  passwd                                    change the master password`

const (
	cmdList   = "list"
	cmdGet    = "get"
	cmdPut    = "put"
	cmdDelete = "delete"
	cmdPasswd = "passwd"
)

const (
	promptMaster     = "Master password: "
	promptSecret     = "Secret: "
	promptNewMaster  = "New master password: "
	promptConfirmNew = "Repeat new master password: "
)

type App struct {
	vault      service.VaultService
	prompter   Prompter
	clearer    *clipboard.Clearer
	identity   models.Identity
	clearAfter time.Duration
	out        io.Writer
	logger     *logger.Logger
}

func NewApp(vault service.VaultService, prompter Prompter, clearer *clipboard.Clearer, cfg *config.StructuredConfig, out io.Writer, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("client config is nil")
	}

	identity := models.DefaultIdentity
	if cfg.App.AccountID != 0 {
		identity = models.AccountIdentity(cfg.App.AccountID)
	}

	return &App{
		vault:      vault,
		prompter:   prompter,
		clearer:    clearer,
		identity:   identity,
		clearAfter: cfg.Clipboard.ClearAfter,
		out:        out,
		logger:     log,
	}, nil
}

// Run implements Client.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug().Str("command", cmd).Stringer(logger.FieldIdentity, a.identity).Msg("running command")

	switch cmd {
	case cmdList:
		return a.list(ctx, rest)
	case cmdGet:
		return a.get(ctx, rest)
	case cmdPut:
		return a.put(ctx, rest)
	case cmdDelete:
		return a.delete(ctx, rest)
	case cmdPasswd:
		return a.passwd(ctx, rest)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

func (a *App) list(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: list takes no arguments", ErrUsage)
	}

	password, err := a.prompter.ReadPassword(promptMaster)
	if err != nil {
		return err
	}

	entries, err := a.vault.ListEntries(ctx, a.identity, password)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "vault is empty")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tUSER\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Username, e.Description)
	}
	return w.Flush()
}

func (a *App) get(ctx context.Context, args []string) error {
	fs := newFlagSet(cmdGet)
	toClipboard := fs.Bool("copy", false, "copy the secret to the clipboard instead of printing it")

	name, err := parseNamed(fs, args)
	if err != nil {
		return err
	}

	password, err := a.prompter.ReadPassword(promptMaster)
	if err != nil {
		return err
	}

	entry, err := a.vault.GetEntry(ctx, a.identity, password, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "name:        %s\n", entry.Name)
	fmt.Fprintf(a.out, "user:        %s\n", entry.Username)
	if !*toClipboard {
		fmt.Fprintf(a.out, "password:    %s\n", entry.Secret)
	}
	fmt.Fprintf(a.out, "description: %s\n", entry.Description)

	if !*toClipboard {
		return nil
	}

	if err = a.clearer.Copy(ctx, entry.Secret, a.clearAfter); err != nil {
		return err
	}
	if a.clearAfter <= 0 {
		fmt.Fprintln(a.out, "password copied to clipboard")
		return nil
	}

	fmt.Fprintf(a.out, "password copied to clipboard, clearing in %s\n", a.clearAfter)
	a.clearer.Wait()
	return nil
}

func (a *App) put(ctx context.Context, args []string) error {
	fs := newFlagSet(cmdPut)
	user := fs.String("user", "", "username stored with the entry")
	description := fs.String("description", "", "free-form description")

	name, err := parseNamed(fs, args)
	if err != nil {
		return err
	}

	password, err := a.prompter.ReadPassword(promptMaster)
	if err != nil {
		return err
	}
	secret, err := a.prompter.ReadPassword(promptSecret)
	if err != nil {
		return err
	}

	entry := models.VaultEntry{
		Name:        name,
		Username:    *user,
		Secret:      secret,
		Description: *description,
	}
	if err = a.vault.PutEntry(ctx, a.identity, password, entry); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "entry %q saved\n", entry.Normalize().Name)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	name, err := parseNamed(newFlagSet(cmdDelete), args)
	if err != nil {
		return err
	}

	password, err := a.prompter.ReadPassword(promptMaster)
	if err != nil {
		return err
	}

	deleted, err := a.vault.DeleteEntry(ctx, a.identity, password, name)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintf(a.out, "entry %q does not exist\n", name)
		return nil
	}

	fmt.Fprintf(a.out, "entry %q deleted\n", name)
	return nil
}

func (a *App) passwd(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: passwd takes no arguments", ErrUsage)
	}

	oldPassword, err := a.prompter.ReadPassword(promptMaster)
	if err != nil {
		return err
	}
	newPassword, err := a.prompter.ReadPassword(promptNewMaster)
	if err != nil {
		return err
	}
	confirm, err := a.prompter.ReadPassword(promptConfirmNew)
	if err != nil {
		return err
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	if err = a.vault.ChangePassword(ctx, a.identity, oldPassword, newPassword); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "master password changed")
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseNamed parses a command that takes exactly one name. Flags may appear
// before or after the name.
func parseNamed(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUsage, fs.Name(), err)
	}
	if fs.NArg() == 0 {
		return "", fmt.Errorf("%w: %s: missing entry name", ErrUsage, fs.Name())
	}

	name := fs.Arg(0)
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUsage, fs.Name(), err)
	}
	if fs.NArg() != 0 {
		return "", fmt.Errorf("%w: %s: unexpected arguments %v", ErrUsage, fs.Name(), fs.Args())
	}
	return name, nil
}
