package adapter

import "errors"

var (
	ErrInvalidAPIKey  = errors.New("invalid api key")
	ErrNotFound       = errors.New("not found")
	ErrAPIUnavailable = errors.New("api unavailable")
)
