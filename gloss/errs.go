package gloss

import (
	"errors"
)

var (
	ErrInvalidGlossInput = errors.New("invalid gloss input")
)
