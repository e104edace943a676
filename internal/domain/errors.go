package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInflatableNotFound = "inflatable not found"
	ErrMsgTagNotFound        = "tag not found"
	ErrMsgInvalidDate        = "invalid date"
	ErrMsgInvalidInput       = "invalid input"
	ErrMsgUnauthorized       = "unauthorized"
	ErrMsgForbidden          = "forbidden"
	ErrMsgSemanticDisabled   = "semantic search is not configured"
	ErrMsgUpstreamFailed     = "upstream call failed"
	ErrMsgDatabaseError      = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInflatableNotFound = errors.New(ErrMsgInflatableNotFound)
	ErrTagNotFound        = errors.New(ErrMsgTagNotFound)
	ErrInvalidDate        = errors.New(ErrMsgInvalidDate)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
	ErrUnauthorized       = errors.New(ErrMsgUnauthorized)
	ErrForbidden          = errors.New(ErrMsgForbidden)
	ErrSemanticDisabled   = errors.New(ErrMsgSemanticDisabled)
	ErrUpstreamFailed     = errors.New(ErrMsgUpstreamFailed)
	ErrDatabaseError      = errors.New(ErrMsgDatabaseError)
)
