package service

import "errors"

// Error presisi per prasyarat; controller yang memetakan ke HTTP + kind.
var (
	ErrInvalidInput     = errors.New("client_id, latitude and longitude are required")
	ErrNotAuthorized    = errors.New("you are not assigned to this client")
	ErrAlreadyCheckedIn = errors.New("please checkout before checking in again")
	ErrClientNotFound   = errors.New("client not found")
	ErrNoActiveSession  = errors.New("no active check-in found")
)
