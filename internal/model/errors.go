package model

import "errors"

// Common errors used across the application
var (
	// Validation errors
	ErrNameRequired       = errors.New("table name is required")
	ErrNotEnoughPlayers   = errors.New("at least 2 players are required")
	ErrPlayerNameRequired = errors.New("player name is required")

	// Lookup errors
	ErrTableNotFound = errors.New("table not found")
	ErrRoundNotFound = errors.New("round not found")

	// Persistence errors
	ErrNoSavedState = errors.New("no saved state")
)
