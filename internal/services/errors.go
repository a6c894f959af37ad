package services

import (
	"errors"
	"fmt"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyProcessed    = errors.New("application already processed")
	ErrUnknownDecision     = errors.New("unknown decision")
	ErrPilotNotFound       = errors.New("pilot not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPasswordTooShort    = errors.New("new password must be at least 8 characters")
	ErrPostNotFound        = errors.New("post not found")
)

// InvalidRegistrationError reports which aircraft/registration pair failed
// tail number validation. The whole accept operation aborts on the first one.
type InvalidRegistrationError struct {
	Model string
	Value string
}

func (e *InvalidRegistrationError) Error() string {
	return fmt.Sprintf("invalid registration %q for aircraft %q: must match SP-XXX", e.Value, e.Model)
}
