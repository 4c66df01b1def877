// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of the runnable application.
type Client interface {
	// Run starts the application and blocks until exit.
	Run() error
}
