// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// SessionRunner runs a single UI session. logout reports whether the
// session ended with a logout and a new session should follow.
type SessionRunner interface {
	Run(ctx context.Context) (logout bool, err error)
}
