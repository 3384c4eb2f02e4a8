package domain

import "errors"

var (
	ErrMissingIdentifier      = errors.New("missing player identifier")
	ErrMalformedStats         = errors.New("malformed stats file")
	ErrMalformedAdvancements  = errors.New("malformed advancements file")
	ErrNameNotFound           = errors.New("player name not found")
	ErrTemporarilyUnavailable = errors.New("temporarily unavailable")
)
