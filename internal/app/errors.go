package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrCancelled = errors.New("run cancelled")
	ErrRender    = errors.New("render report failed")
)
