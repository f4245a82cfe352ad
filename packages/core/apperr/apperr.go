package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a service error so handlers can map it onto an HTTP status
// without matching on message strings.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConstraintViolation
	KindAlreadyFinished
	KindInvalidWinner
	KindInvalidInput
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

func ConstraintViolation(format string, args ...any) *Error {
	return New(KindConstraintViolation, format, args...)
}

func AlreadyFinished(format string, args ...any) *Error {
	return New(KindAlreadyFinished, format, args...)
}

func InvalidWinner(format string, args ...any) *Error {
	return New(KindInvalidWinner, format, args...)
}

func InvalidInput(format string, args ...any) *Error {
	return New(KindInvalidInput, format, args...)
}

// KindOf returns the kind of err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
