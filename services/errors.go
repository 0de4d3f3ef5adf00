package services

import "errors"

// Sentinel errors the controllers translate into HTTP statuses. A store
// failure never propagates raw to the transport layer.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("already exists")
	ErrUnavailable = errors.New("store unavailable")
)
