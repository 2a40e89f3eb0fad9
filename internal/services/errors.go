package services

import "errors"

// ErrInvalidInput marks a mutation whose input is structurally invalid,
// such as a blank comment or an unknown status.
var ErrInvalidInput = errors.New("invalid input")
