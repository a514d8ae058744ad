package coach

import (
	"errors"
	"net/http"
)

// ValidationError reports invalid user input. Its message is meant to be
// shown to the user as is.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

// StatusCode maps validation failures to 422 Unprocessable Entity.
func (e *ValidationError) StatusCode() int { return http.StatusUnprocessableEntity }

// ErrValidation constructs a ValidationError.
func ErrValidation(msg string) error { return &ValidationError{msg: msg} }

// IsValidation reports whether err indicates invalid user input.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// errMalformedReply signals a model reply that decoded but lacks required fields.
var errMalformedReply = errors.New("model reply missing required fields")
