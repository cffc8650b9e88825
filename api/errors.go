// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values shared across the library.

package api

import "errors"

var (
	// ErrInvalidArgument reports a constructor argument outside its domain.
	ErrInvalidArgument = errors.New("invalid argument")
)
