package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-secure-notes/internal/service"
	"github.com/MKhiriev/go-secure-notes/internal/store"
	"github.com/MKhiriev/go-secure-notes/internal/validators"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "wrong password", err: service.ErrWrongPassword, want: MsgWrongPassword},
		{name: "wrapped throttling", err: fmt.Errorf("login: %w", service.ErrTooManyAttempts), want: MsgTooManyAttempts},
		{name: "pin policy", err: validators.ErrPINMissingSymbol, want: MsgPINPolicy},
		{name: "empty title", err: validators.ErrEmptyTitle, want: MsgEmptyTitle},
		{name: "storage", err: fmt.Errorf("save: %w", store.ErrExecutingStatement), want: MsgStorageFailure},
		{name: "joined", err: errors.Join(errors.New("x"), store.ErrSealingValue), want: MsgStorageFailure},
		{name: "unknown", err: errors.New("boom"), want: MsgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
