package ir

import "errors"

var (
	// ErrParse reports malformed input text.
	ErrParse = errors.New("parse error")
)
