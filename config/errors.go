package config

import "errors"

var (
	// ErrUnknownKind indicates a space kind other than discrete, indiscrete, basis or metric.
	ErrUnknownKind = errors.New("config: unknown space kind")

	// ErrUnknownSpace indicates a reference to a space that is not defined.
	ErrUnknownSpace = errors.New("config: unknown space")

	// ErrUnknownCompletion indicates a reference to a completion that is not defined.
	ErrUnknownCompletion = errors.New("config: unknown completion")

	// ErrUnknownPoint indicates a point label missing from the relevant carrier.
	ErrUnknownPoint = errors.New("config: unknown point")

	// ErrDuplicateName indicates two spaces, two completions or two points with one name.
	ErrDuplicateName = errors.New("config: duplicate name")

	// ErrMalformed indicates an entry of the wrong shape.
	ErrMalformed = errors.New("config: malformed entry")
)
