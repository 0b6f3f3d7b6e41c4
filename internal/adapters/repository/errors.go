package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound      = errors.New("game not found")
	ErrAlreadyExists = errors.New("game already exists")
	ErrEncodeState   = errors.New("encode game state")
	ErrDecodeState   = errors.New("decode game state")
)
