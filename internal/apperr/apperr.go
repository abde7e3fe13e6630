// Package apperr holds the error taxonomy shared by the webhook handlers.
//
// Authentication and user-input errors terminate a request immediately.
// Resolver errors wrap downstream (Processor or Platform) call failures;
// the authorize flow converts them into denial responses instead of
// surfacing them, everything else lets them reach the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
)

// AuthenticationError means the caller or the tenant settings lack valid
// credentials. Never retried.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string { return e.Reason }

// UserInputError means the inbound payload is malformed or incomplete.
type UserInputError struct {
	Reason string
}

func (e *UserInputError) Error() string { return e.Reason }

// ErrDockAddressMisconfiguration is returned when a fulfillment dock is
// missing required address fields. Merchant configuration problem, not ours.
var ErrDockAddressMisconfiguration = errors.New("dock-address-misconfiguration")

// ResolverError wraps a failed Processor or Platform call with a
// human-readable message that embeds the cause.
type ResolverError struct {
	Message string
	Cause   error
}

func (e *ResolverError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *ResolverError) Unwrap() error { return e.Cause }

func NewResolverError(cause error, format string, args ...any) *ResolverError {
	return &ResolverError{Message: fmt.Sprintf(format, args...), Cause: cause}
}
