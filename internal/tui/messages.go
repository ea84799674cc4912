package tui

import (
	"github.com/MKhiriev/go-secure-notes/models"
)

type registeredMsg struct {
	err error
}

type loggedInMsg struct {
	err error
}

type greetingMsg struct {
	username string
	err      error
}

type questionLoadedMsg struct {
	question string
	err      error
}

type answerVerifiedMsg struct {
	err error
}

type passwordResetMsg struct {
	err error
}

type passwordChangedMsg struct {
	err error
}

type notesLoadedMsg struct {
	err error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	err error
}

type accountDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
