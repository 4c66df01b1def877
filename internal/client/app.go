package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/service"
	"github.com/MKhiriev/go-movie-browser/internal/tui"
	"github.com/MKhiriev/go-movie-browser/internal/utils"
)

var _ Client = (*App)(nil)

// App owns the process lifecycle: it seeds the demo account, then alternates
// between the sign-in screen and the catalog browser until the user quits.
type App struct {
	services *service.Services
	ui       *tui.TUI
	log      *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}

	return &App{services: services, ui: ui, log: log}, nil
}

// Run starts the application and blocks until exit. Every sign-in gets a
// context carrying the username, so the services log who triggered what. The
// poster prefetch pool lives exactly as long as the browsing session.
func (a *App) Run() error {
	ctx := a.log.WithContext(context.Background())

	if err := a.services.Auth.Bootstrap(ctx); err != nil {
		return fmt.Errorf("preparing demo account: %w", err)
	}

	for {
		username, err := a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.log.Info().Str("username", username).Msg("user signed in")
		userCtx := context.WithValue(ctx, utils.UsernameCtxKey, username)

		a.services.Prefetcher.Start(userCtx)
		logout, err := a.ui.Browse(userCtx, username)
		a.services.Prefetcher.Stop()
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.log.Info().Str("username", username).Msg("user logged out")
	}
}
