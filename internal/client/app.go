package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secure-notes/internal/logger"
	"github.com/MKhiriev/go-secure-notes/internal/tui"
)

type App struct {
	ui     SessionRunner
	logger *logger.Logger
}

func NewApp(ui SessionRunner, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is nil")
	}
	return &App{ui: ui, logger: log}, nil
}

func (a *App) Run(ctx context.Context) error {
	for session := 1; ; session++ {
		a.logger.Info().Int("session", session).Msg("starting ui session")

		logout, err := a.ui.Run(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user quit")
			return nil
		}
		if err != nil {
			return fmt.Errorf("ui session: %w", err)
		}
		if !logout {
			return nil
		}
		if err = ctx.Err(); err != nil {
			return err
		}
		a.logger.Info().Msg("session ended with logout")
	}
}
