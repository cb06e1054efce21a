// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the activity server and
// the terminal client.
//
// Msg* constants are the exact `detail` values the server writes into error
// bodies. The client compares against them to map responses onto its own
// sentinel errors, so the wording must stay identical on both sides.
// UI* constants are the fallback texts the client shows when the server did
// not supply a detail or could not be reached.
package app

const (
	// MsgActivityNotFound is returned with 404 when the activity name in the
	// path is not part of the catalog.
	MsgActivityNotFound = "Activity not found"

	// MsgAlreadySignedUp is returned with 400 when the email is already
	// enrolled in the activity.
	MsgAlreadySignedUp = "Student is already signed up"

	// MsgActivityFull is returned with 400 when the activity has no spots left.
	MsgActivityFull = "Activity is full"

	// MsgNotSignedUp is returned with 400 when unregistering an email that is
	// not enrolled in the activity.
	MsgNotSignedUp = "Student is not signed up for this activity"

	// MsgEmailRequired is returned with 422 when the email query parameter
	// is missing or blank.
	MsgEmailRequired = "email is required"

	// MsgInternalServerError is returned with 500 on unexpected failures.
	MsgInternalServerError = "internal server error"
)

const (
	// UILoadFailed replaces the activity listing when the catalog could not
	// be fetched.
	UILoadFailed = "Failed to load activities. Please try again later."

	// UISignupGenericError is shown when signup fails without a detail.
	UISignupGenericError = "An error occurred"

	// UISignupTransportError is shown when the signup request never got a
	// response.
	UISignupTransportError = "Failed to sign up. Please try again."

	// UIWithdrawGenericError is shown when unregister fails without a detail.
	UIWithdrawGenericError = "An error occurred while removing participant"

	// UIWithdrawTransportError is shown when the unregister request never got
	// a response.
	UIWithdrawTransportError = "Failed to remove participant. Please try again."

	// UINoParticipants is the placeholder of an activity with nobody enrolled.
	UINoParticipants = "No participants yet - be the first to sign up!"
)

// SignedUpMessage formats the success message of the signup endpoint.
func SignedUpMessage(email, activity string) string {
	return "Signed up " + email + " for " + activity
}

// UnregisteredMessage formats the success message of the unregister endpoint.
func UnregisteredMessage(email, activity string) string {
	return "Unregistered " + email + " from " + activity
}
