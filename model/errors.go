package model

import (
	"errors"
	"fmt"

	"xdao.co/rinchi/rinchi"
	"xdao.co/rinchi/storage"
)

type ErrorCode string

const (
	ErrInvalidRequest             ErrorCode = "INVALID_REQUEST"
	ErrAdapterFailure             ErrorCode = "ADAPTER_FAILURE"
	ErrUnexpectedIdentifierFormat ErrorCode = "UNEXPECTED_IDENTIFIER_FORMAT"
	ErrEmptyReaction              ErrorCode = "EMPTY_REACTION"
	ErrNotFound                   ErrorCode = "NOT_FOUND"
	ErrInternal                   ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// AsCodedError maps err onto the boundary error codes. A *CodedError is
// returned unchanged; nil maps to nil.
func AsCodedError(err error) *CodedError {
	if err == nil {
		return nil
	}
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce
	}

	var re *rinchi.Error
	if errors.As(err, &re) {
		switch re.Kind {
		case rinchi.KindAdapter:
			return NewError(ErrAdapterFailure, re.Error())
		case rinchi.KindFormat:
			return NewError(ErrUnexpectedIdentifierFormat, re.Error())
		case rinchi.KindEmptyReaction:
			return NewError(ErrEmptyReaction, re.Error())
		default:
			return NewError(ErrInternal, re.Error())
		}
	}
	switch {
	case storage.IsNotFound(err):
		return NewError(ErrNotFound, err.Error())
	case errors.Is(err, storage.ErrInvalidCID):
		return NewError(ErrInvalidRequest, err.Error())
	}
	return NewError(ErrInternal, err.Error())
}
