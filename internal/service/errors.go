package service

import "errors"

// Boundary-facing failure kinds. Handlers map these to status codes; partial
// success is never reported as success.
var (
	ErrValidation        = errors.New("validation failed")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrShareNotFound     = errors.New("share not found")
	ErrRoomNumberTaken   = errors.New("room number already exists")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrAlreadyMember     = errors.New("already a workspace member")
	ErrWrongPassword     = errors.New("wrong workspace password")
	ErrUserHasWorkItems  = errors.New("user still owns work items")
	ErrPastExpiry        = errors.New("expiry date must be in the future")
	// ErrStorage marks a filesystem failure during photo ingestion, after
	// best-effort cleanup of partial writes.
	ErrStorage = errors.New("photo storage failure")
)
