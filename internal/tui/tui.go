package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit reports that the user closed the sign-in screen instead of
// authenticating.
var ErrUserQuit = errors.New("quit by user")

// TUI drives the two interactive flows of the application: the sign-in screen
// and the catalog browser. Each flow runs its own Bubble Tea program in the
// alternate screen buffer.
type TUI struct {
	services *service.Services
}

func New(services *service.Services, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the sign-in screen and blocks until the user authenticates
// or quits. On success it opens a fresh session and returns the signed-in
// username; a user-initiated exit returns [ErrUserQuit].
func (t *TUI) LoginFlow(ctx context.Context) (string, error) {
	model := newLoginModel(ctx, t.services.Auth)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser || !result.authenticated {
		return "", ErrUserQuit
	}

	startSession(result.username)
	return result.username, nil
}

// Browse runs the catalog browser for the signed-in user and blocks until the
// user logs out or quits. A logout closes the session and returns true so the
// caller can restart the sign-in flow.
func (t *TUI) Browse(ctx context.Context, username string) (logout bool, err error) {
	model := newBrowseModel(ctx, t.services, username)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(browseModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.logout {
		clearSession()
		return true, nil
	}
	return false, nil
}
