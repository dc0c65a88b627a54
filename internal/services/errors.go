package services

import "errors"

// Distinguishable failure reasons. Handlers map these onto HTTP statuses and
// clients rely on the distinction: a locked rejection means "picks locked",
// a not-found means "rejoin the game".
var (
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrFightNotFound  = errors.New("fight not found")
	ErrPicksLocked    = errors.New("picks are locked")
	ErrOutOfOrder     = errors.New("fight is not the current one")
	ErrAlreadyStarted = errors.New("game already started")
)
