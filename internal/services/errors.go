package services

import (
	"errors"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindStore      ErrorKind = "store_failure"
	KindUpstream   ErrorKind = "upstream_failure"
)

// Error codes that clients branch on.
const (
	CodeInvalidInviteCode = "invalid_code"
	CodeAlreadyMember     = "already_member"
	CodeInOtherFamily     = "in_other_family"
	CodeNotMember         = "not_member"
	CodeRateLimited       = "rate_limited"
	CodeQuotaExhausted    = "quota_exhausted"
	CodeGenerationFailed  = "generation_failed"
)

// Error is the user-facing failure of a service operation. Message is safe to
// show; Err keeps the cause for logs.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func validationError(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func notFoundError(code, message string) error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func conflictError(code, message string) error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func storeFailure(message string, err error) error {
	return &Error{Kind: KindStore, Message: message, Err: err}
}

func upstreamFailure(code, message string, err error) error {
	return &Error{Kind: KindUpstream, Code: code, Message: message, Err: err}
}

// KindOf returns the kind of a service error, KindStore for anything else.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindStore
}

// CodeOf returns the code of a service error, or "".
func CodeOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
