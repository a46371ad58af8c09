package httperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ===============================
// Business error taxonomy
// ===============================

type Kind string

const (
	KindValidation  Kind = "validation"
	KindConflict    Kind = "conflict"
	KindOverpayment Kind = "overpayment"
	KindIntegrity   Kind = "integrity"
	KindNotFound    Kind = "not_found"
	KindStore       Kind = "store"
)

// BusinessError carries a stable code and a user-facing message.
// Validation and conflict messages are surfaced verbatim to the end user;
// store errors keep their cause for diagnostics.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func (e BusinessError) Unwrap() error { return e.cause }

func Validation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func Conflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func Overpayment(code, message string) error {
	return BusinessError{Kind: KindOverpayment, Code: code, Message: message}
}

func Integrity(code, message string) error {
	return BusinessError{Kind: KindIntegrity, Code: code, Message: message}
}

func NotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

// Store wraps an underlying storage failure, never swallowing the cause.
func Store(code string, cause error) error {
	return BusinessError{
		Kind:    KindStore,
		Code:    code,
		Message: fmt.Sprintf("error de almacenamiento: %v", cause),
		cause:   cause,
	}
}

// NotFoundOrStore classifies a repository read error: a missing row keeps
// its not-found identity, anything else (outage, timeout) stays a store
// failure instead of masquerading as "no existe".
func NotFoundOrStore(err error, code, message, storeCode string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(code, message)
	}
	return Store(storeCode, err)
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Kind == kind
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
