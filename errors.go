package rgba

import "errors"

var (
	// ErrParse indicates a malformed textual color.
	ErrParse = errors.New("parse error")

	// ErrInvalidLength indicates binary color data that is not exactly 4 bytes.
	ErrInvalidLength = errors.New("invalid length")
)
