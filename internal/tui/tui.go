// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the secure-notes client built on
// Bubble Tea. A single program covers registration, login, PIN recovery,
// the notes screens and settings.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/service"
	"github.com/MKhiriev/go-secure-notes/models"
)

// ErrUserQuit is returned by Run when the user closes the program.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, info models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.CredentialService == nil || services.NotesService == nil {
		return nil, errors.New("tui: services are not configured")
	}
	return &TUI{services: services, buildInfo: info, logger: log}, nil
}

// Run starts one UI session. It opens on the login screen when an account
// exists and on registration otherwise. logout is true when the session
// ended with a logout or an account deletion; the caller then starts a new
// session.
func (t *TUI) Run(ctx context.Context) (logout bool, err error) {
	registered, err := t.services.CredentialService.IsRegistered(ctx)
	if err != nil {
		return false, fmt.Errorf("check registration: %w", err)
	}

	start := screenRegister
	if registered {
		start = screenLogin
	}

	model := newAppModel(ctx, t.services, t.buildInfo, t.logger, start)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}

	return result.logout, nil
}
