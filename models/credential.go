// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential is the single local user's registration record.
//
// PINHash and SecurityAnswerHash hold Argon2id digests produced by the
// crypto package. Plaintext secrets never reach this struct after
// registration.
type Credential struct {
	// Username is the display name shown on the login screen.
	Username string

	// PINHash is the encoded Argon2id hash of the user's PIN.
	// Its presence is what marks the device as registered.
	PINHash string

	// SecurityQuestion is the recovery question text chosen at registration.
	SecurityQuestion string

	// SecurityAnswerHash is the encoded Argon2id hash of the normalised
	// (trimmed, lower-cased) recovery answer.
	SecurityAnswerHash string
}

// RegisterRequest carries the plaintext registration form values.
type RegisterRequest struct {
	Username         string
	PIN              string
	SecurityQuestion string
	SecurityAnswer   string
}

// SecurityQuestions is the catalogue offered on the registration screen.
var SecurityQuestions = []string{
	"What was the name of your first pet?",
	"What is your mother's maiden name?",
	"What was the name of your first school?",
	"Who was your favourite teacher?",
	"In which city were you born?",
}
