package lsystem

import "errors"

var (
	ErrEmptyAxiom  = errors.New("axiom must be a non empty string")
	ErrEmptyRules  = errors.New("rules must be a non empty symbol to string mapping")
	ErrInvalidRule = errors.New("invalid production rule")
)
