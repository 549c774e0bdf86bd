package service

import (
	"errors"
	"fmt"

	"netplas-inventory/internal/model"
	"netplas-inventory/pkg/validator"

	"gorm.io/gorm"
)

// ErrorKind classifies service failures; handlers map it to a status code.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidInput
	KindNotFound
	KindConflict
	KindForbidden
	KindUnauthorized
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error is the only error type services hand back to handlers.
type Error struct {
	Kind    ErrorKind
	Message string
	Fields  []*validator.ErrorResponse
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func invalid(msg string) *Error   { return &Error{Kind: KindInvalidInput, Message: msg} }
func notFound(msg string) *Error  { return &Error{Kind: KindNotFound, Message: msg} }
func conflict(msg string) *Error  { return &Error{Kind: KindConflict, Message: msg} }
func forbidden(msg string) *Error { return &Error{Kind: KindForbidden, Message: msg} }

func unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }

func internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf reports the kind of err, KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

// validate runs the struct validator and folds every failure into one error.
func validate(req interface{}) error {
	errs := validator.ValidateStruct(req)
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	return &Error{
		Kind:    KindInvalidInput,
		Message: fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag),
		Fields:  errs,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// lookupErr turns a failed single-row lookup into NotFound or Internal.
func lookupErr(err error, msg string) error {
	if isNotFound(err) {
		return notFound(msg)
	}
	return internal(msg, err)
}

// deleteErr turns a failed delete into NotFound or Internal.
func deleteErr(err error, notFoundMsg string) error {
	if isNotFound(err) {
		return notFound(notFoundMsg)
	}
	return internal("failed to delete record", err)
}

// writeErr turns a failed insert/update into Conflict on unique violations.
func writeErr(err error, conflictMsg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict(conflictMsg)
	}
	return internal("failed to save changes", err)
}

// hashErr reports credentials bcrypt cannot hash as bad input.
func hashErr(err error) error {
	if errors.Is(err, model.ErrCredentialTooLong) {
		return invalid(fmt.Sprintf("Passwords and secret answers must not exceed %d bytes.", model.MaxCredentialBytes))
	}
	return internal("failed to hash credentials", err)
}

// asServiceErr passes *Error values through and wraps anything else as Internal.
func asServiceErr(err error, msg string) error {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return internal(msg, err)
}
