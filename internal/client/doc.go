// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs terminal UI sessions one after another until the user quits. A
// logout or an account deletion ends the current session and starts a new
// one on the login or registration screen.
package client
