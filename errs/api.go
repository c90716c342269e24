package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the service's failure taxonomy.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrStorage            = errors.New("database error")
	ErrVerification       = errors.New("could not verify password")
)

// ApiErr carries an HTTP status code alongside the error it classifies. The
// message is what callers see; Cause keeps the underlying failure for logs
// and is never serialized.
type ApiErr struct {
	StatusCode int
	kind       error
	message    string
	Cause      error
}

// implements the error interface so an *ApiErr can travel as a plain error
func (e *ApiErr) Error() string {
	return e.message
}

// Unwrap exposes the sentinel so errors.Is(err, errs.ErrNotFound) works.
func (e *ApiErr) Unwrap() error {
	return e.kind
}

// Full returns the message chained with every underlying cause, for logging.
func (e *ApiErr) Full() string {
	msg := e.message
	cause := e.Cause
	for cause != nil {
		if apiErr, ok := cause.(*ApiErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.message)
			cause = apiErr.Cause
			continue
		}
		msg = fmt.Sprintf("%s -> %s", msg, cause.Error())
		cause = nil
	}
	return msg
}

// NewValidationError reports malformed or missing client input. Checked
// before any store access, so a validation failure never leaves a partial
// write behind.
func NewValidationError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, kind: ErrValidation, message: message}
}

// NewMissingFieldError is a validation error naming the absent field.
func NewMissingFieldError(field string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		kind:       ErrValidation,
		message:    fmt.Sprintf("missing required field: %s", field),
	}
}

// NewNotFoundError reports that the referenced entity does not exist.
func NewNotFoundError(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		kind:       ErrNotFound,
		message:    fmt.Sprintf("%s not found", entity),
	}
}

// NewInvalidCredentialsError reports a sign-in failure. Unknown username and
// wrong password both produce this error with the same message; the cause
// preserves which one happened for internal diagnostics only.
func NewInvalidCredentialsError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		kind:       ErrInvalidCredentials,
		message:    ErrInvalidCredentials.Error(),
		Cause:      cause,
	}
}

// NewVerificationError reports a failure inside the hash-comparison
// subsystem itself, as opposed to a mismatch.
func NewVerificationError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		kind:       ErrVerification,
		message:    ErrVerification.Error(),
		Cause:      cause,
	}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
