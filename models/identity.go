// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// Identity selects which vault an operation works on. It is handed over by
// the account/session layer and is only used as a lookup key.
//
// The zero value is the local/default vault.
type Identity struct {
	accountID int64
	account   bool
}

// DefaultIdentity is the local vault that is not bound to any account.
var DefaultIdentity = Identity{}

// AccountIdentity returns the identity of the vault owned by accountID.
func AccountIdentity(accountID int64) Identity {
	return Identity{accountID: accountID, account: true}
}

// AccountID returns the account id and true for account identities, or
// 0 and false for the default vault.
func (i Identity) AccountID() (int64, bool) {
	return i.accountID, i.account
}

// IsDefault reports whether i is the local/default vault.
func (i Identity) IsDefault() bool {
	return !i.account
}

// String returns a stable key for i. Distinct identities always produce
// distinct strings.
func (i Identity) String() string {
	if !i.account {
		return "default"
	}
	return "account:" + strconv.FormatInt(i.accountID, 10)
}
