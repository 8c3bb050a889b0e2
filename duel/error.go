package duel

import "errors"

// ErrInvalidArgument is returned when the pattern or the text is nil.
// A nil input is an error; an empty one is a valid input with no matches.
var ErrInvalidArgument = errors.New("duel: invalid argument")

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "duel: invalid config: " + e.Field + ": " + e.Message
}
