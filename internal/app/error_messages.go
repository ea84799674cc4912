// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the secure-notes
// client and the mapping from service errors to them.
//
// Keeping the wording in one place gives every screen the same phrasing
// for the same failure.
package app

const (
	// MsgUsernameTooShort is shown when the trimmed username has fewer than
	// three characters.
	MsgUsernameTooShort = "Username must be at least 3 characters long"

	// MsgPINPolicy is shown when a new PIN fails the complexity policy.
	MsgPINPolicy = "PIN must be at least 8 characters and contain upper and lower case letters, a digit and a symbol"

	// MsgEmptyPIN is shown when recovery is attempted with an empty PIN.
	MsgEmptyPIN = "PIN can not be empty"

	// MsgSecurityQuestionRequired is shown when no recovery question was picked.
	MsgSecurityQuestionRequired = "Please choose a security question"

	// MsgSecurityAnswerRequired is shown when the recovery answer is blank.
	MsgSecurityAnswerRequired = "Please enter an answer to the security question"

	// MsgWrongPassword is shown when the PIN does not match.
	MsgWrongPassword = "Incorrect password"

	// MsgWrongCurrentPassword is shown on the change password screen when
	// the current PIN does not match.
	MsgWrongCurrentPassword = "Current password is incorrect"

	// MsgPasswordsDoNotMatch is shown when the new PIN and its confirmation differ.
	MsgPasswordsDoNotMatch = "New passwords do not match"

	// MsgWrongSecurityAnswer is shown when the recovery answer does not match.
	MsgWrongSecurityAnswer = "Incorrect answer"

	// MsgRecoveryNotVerified is shown when step two of recovery is reached
	// without answering the security question.
	MsgRecoveryNotVerified = "Answer the security question first"

	// MsgTooManyAttempts is shown while login attempts are throttled.
	MsgTooManyAttempts = "Too many failed attempts. Please wait and try again"

	// MsgNotRegistered is shown when no account exists on this device.
	MsgNotRegistered = "No account found on this device"

	// MsgEmptyTitle is shown when a note is saved without a title.
	MsgEmptyTitle = "Title can not be empty"

	// MsgEmptyContent is shown when a note is saved without content.
	MsgEmptyContent = "Content can not be empty"

	// MsgStorageFailure is shown for any secure store failure.
	MsgStorageFailure = "Could not access secure storage. Please try again"

	// MsgUnexpected is shown for errors with no dedicated message.
	MsgUnexpected = "Something went wrong"
)

const (
	MsgRegistered        = "Account created. Please log in"
	MsgPasswordChanged   = "Password changed"
	MsgPasswordReset     = "Password reset. Please log in"
	MsgNoteSaved         = "Note saved"
	MsgNoteDeleted       = "Note deleted"
	MsgCopiedToClipboard = "Copied to clipboard"
	MsgClipboardFailed   = "Could not copy to clipboard"
)
