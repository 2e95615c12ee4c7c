// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command in args and blocks until it finishes or ctx
	// is canceled.
	Run(ctx context.Context, args []string) error
}

// Prompter reads secrets from the user without echoing them.
type Prompter interface {
	ReadPassword(prompt string) (string, error)
}
