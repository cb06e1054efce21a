// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the terminal client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers together.
package workers

// Worker is a background job owned by the client process.
//
// Run must not block: implementations start their own goroutines. Stop
// blocks until those goroutines have exited and is safe to call when the
// worker never ran.
type Worker interface {
	Run()
	Stop()
}
