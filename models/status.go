// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusKind is the visual style of a status message.
type StatusKind int

const (
	// StatusSuccess marks the outcome of a successful operation.
	StatusSuccess StatusKind = iota
	// StatusError marks the outcome of a failed operation.
	StatusError
)

// String implements fmt.Stringer.
func (k StatusKind) String() string {
	switch k {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// StatusMessage is the content of the single transient status region.
//
// Seq is the generation token of the message: every new message gets a
// bigger Seq, and a deferred clear only applies when it still matches.
type StatusMessage struct {
	Text    string
	Kind    StatusKind
	Visible bool
	Seq     uint64
}
