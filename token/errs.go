package token

import (
	"errors"
)

var (
	ErrInvalidPatternSet = errors.New("invalid pattern set")
)
