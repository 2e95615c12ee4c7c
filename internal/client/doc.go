// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vaultctl command-line front end.
//
// It parses a subcommand and its arguments, prompts for the master password
// and secrets, calls the vault service and renders the result. Errors from the
// service are shown through [service.UserMessage] so causes such as file
// paths never reach the terminal.
package client
