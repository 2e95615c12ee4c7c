package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	vaultBlobsTable = "vault_blobs"

	columnIdentity  = "identity"
	columnData      = "data"
	columnVersion   = "version"
	columnUpdatedAt = "updated_at"
)

// buildLoadVaultQuery selects the blob and version of one identity.
func buildLoadVaultQuery(b sq.StatementBuilderType, identity string) (string, []any, error) {
	query, args, err := b.
		Select(columnData, columnVersion).
		From(vaultBlobsTable).
		Where(sq.Eq{columnIdentity: identity}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertVaultQuery creates the first version of a vault.
func buildInsertVaultQuery(b sq.StatementBuilderType, identity string, data []byte, now time.Time) (string, []any, error) {
	query, args, err := b.
		Insert(vaultBlobsTable).
		Columns(columnIdentity, columnData, columnVersion, columnUpdatedAt).
		Values(identity, data, int64(1), now).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateVaultQuery replaces the blob only if the row is still at
// baseVersion, bumping the version by one.
func buildUpdateVaultQuery(b sq.StatementBuilderType, identity string, data []byte, baseVersion int64, now time.Time) (string, []any, error) {
	query, args, err := b.
		Update(vaultBlobsTable).
		Set(columnData, data).
		Set(columnVersion, sq.Expr(columnVersion+" + 1")).
		Set(columnUpdatedAt, now).
		Where(sq.Eq{columnIdentity: identity}).
		Where(sq.Eq{columnVersion: baseVersion}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
