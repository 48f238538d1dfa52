package services

import "errors"

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrAmbiguousPlayer    = errors.New("more than one player has that name")
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchAlreadyPlayed = errors.New("match result already recorded")
)
