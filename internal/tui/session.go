package tui

import (
	"sync/atomic"

	"github.com/MKhiriev/go-movie-browser/internal/utils"
)

var (
	sessionIDs  = utils.NewUUIDGenerator()
	sessionUser atomic.Value
	sessionID   atomic.Value
)

func startSession(username string) {
	sessionUser.Store(username)
	sessionID.Store(sessionIDs.Generate())
}

func getSessionUser() string {
	v, _ := sessionUser.Load().(string)
	return v
}

func getSessionID() string {
	v, _ := sessionID.Load().(string)
	return v
}

func clearSession() {
	sessionUser.Store("")
	sessionID.Store("")
}
