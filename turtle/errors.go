package turtle

import "errors"

var (
	// ErrUnbalancedBranch is returned when a branch is closed with an empty stack.
	ErrUnbalancedBranch = errors.New("inconsistent state: too many ']'")
	// ErrInvalidExtent is returned when a computed extent has min > max.
	ErrInvalidExtent = errors.New("invalid extent")
)
