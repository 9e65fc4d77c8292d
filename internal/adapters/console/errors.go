package console

import "errors"

// Sentinel kinds for console errors.
var (
	ErrWrite = errors.New("console write failed")
)
