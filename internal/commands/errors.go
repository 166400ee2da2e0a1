package commands

import "errors"

// Sentinel errors forming the registry's error taxonomy. Failures from
// Register and Execute wrap exactly one of these, so callers branch with
// errors.Is rather than string matching.
//
// Errors raised inside a command's own Handler are not part of the taxonomy;
// they propagate through Execute unchanged.
var (
	// ErrInvalidCommand rejects a registration with no name, no handler,
	// or an alias colliding with another live command.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrCommandNotFound means the parsed name resolved to no known
	// command or alias at execute time.
	ErrCommandNotFound = errors.New("command not found")

	// ErrCommandUnavailable means the command exists but its condition
	// evaluated false at execute time.
	ErrCommandUnavailable = errors.New("command unavailable")

	// ErrMissingParameters means fewer arguments were supplied than the
	// command's required parameters.
	ErrMissingParameters = errors.New("missing required parameters")

	// ErrInvalidParameterType means a supplied argument failed its
	// declared parameter type check.
	ErrInvalidParameterType = errors.New("invalid parameter type")
)
