// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Registration names a participant and the activity they sign up for or
// withdraw from.
type Registration struct {
	Activity string
	Email    string
}
