package utils

import "errors"

var (
	ErrOriginRequired       = errors.New("origin location is required")
	ErrNoDestinations       = errors.New("at least one destination is required")
	ErrDestinationRequired  = errors.New("destination reference is required")
	ErrInvalidTravelDates   = errors.New("arrival must be strictly before departure")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidAdvanceAmount = errors.New("advance amount must be a positive whole number")
	ErrInvalidStatus        = errors.New("invalid request status")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrRequestNotFound      = errors.New("travel request not found")
	ErrDestinationNotFound  = errors.New("destination not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidPageSize      = errors.New("invalid page size parameter")
	ErrDatabaseError        = errors.New("database error")
)
