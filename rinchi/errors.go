package rinchi

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind/RuleID rather than matching error strings.
type Kind string

const (
	// KindAdapter: the Identifier failed for a molecule (AdapterFailure).
	KindAdapter Kind = "AdapterFailure"
	// KindFormat: the Identifier returned text the encoder cannot use (UnexpectedIdentifierFormat).
	KindFormat Kind = "UnexpectedIdentifierFormat"
	// KindEmptyReaction: strict mode received a reaction without molecules.
	KindEmptyReaction Kind = "EmptyReaction"
	KindInternal      Kind = "Internal"
)

// Stable rule identifiers.
const (
	RuleAdapterFailure     = "RINCHI-ID-001"
	RuleMissingPrefix      = "RINCHI-ID-010"
	RuleEmptyBody          = "RINCHI-ID-011"
	RuleReservedSeparator  = "RINCHI-ID-012"
	RuleEmptyReaction      = "RINCHI-RXN-001"
	RuleMissingIdentifier  = "RINCHI-INTERNAL-001"
	RuleMalformedDocument  = "RINCHI-DOC-001"
	RuleDocumentCIDFailure = "RINCHI-DOC-002"
)

// Error is the package's structured error type.
//
// Role and Index locate the molecule that failed; Index is -1 when the
// error is not tied to a single molecule.
type Error struct {
	Kind    Kind
	RuleID  string
	Role    Role
	Index   int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Index < 0 {
		return e.Message
	}
	if e.Cause != nil && e.Kind == KindAdapter {
		return fmt.Sprintf("%s %d: %s: %v", e.Role, e.Index, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s %d: %s", e.Role, e.Index, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) *Error {
	return &Error{Kind: kind, RuleID: ruleID, Index: -1, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) *Error {
	e := newError(kind, ruleID, msg)
	e.Cause = cause
	return e
}

// at attaches the molecule location to e.
func (e *Error) at(role Role, index int) *Error {
	e.Role = role
	e.Index = index
	return e
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
