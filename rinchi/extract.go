package rinchi

import (
	"strings"
)

// TrimInChI validates raw adapter output and returns the identifier body.
//
// raw must start with InChIPrefix. The body is everything after the prefix up
// to, but not including, the first line terminator. No other transformation
// is applied.
func TrimInChI(raw string) (string, error) {
	body, err := trimBody(raw)
	if err != nil {
		return "", err
	}
	return body, nil
}

// Extract runs id on m and returns the trimmed identifier body.
func Extract(id Identifier, m Molecule) (string, error) {
	body, err := extractBody(id, m)
	if err != nil {
		return "", err
	}
	return body, nil
}

func trimBody(raw string) (string, *Error) {
	if !strings.HasPrefix(raw, InChIPrefix) {
		return "", newError(KindFormat, RuleMissingPrefix, "identifier does not start with "+InChIPrefix)
	}
	body := raw[len(InChIPrefix):]
	if i := strings.IndexAny(body, "\r\n"); i >= 0 {
		body = body[:i]
	}
	if body == "" {
		return "", newError(KindFormat, RuleEmptyBody, "identifier body is empty")
	}
	return body, nil
}

func extractBody(id Identifier, m Molecule) (string, *Error) {
	if id == nil {
		return "", newError(KindInternal, RuleMissingIdentifier, "nil Identifier")
	}
	raw, err := id.Identify(m)
	if err != nil {
		return "", wrapError(KindAdapter, RuleAdapterFailure, "identifier failed", err)
	}
	return trimBody(raw)
}

// checkReserved rejects bodies that would make the layered string ambiguous.
func checkReserved(body string) *Error {
	if strings.Contains(body, ComponentSeparator) || strings.Contains(body, GroupSeparator) {
		return newError(KindFormat, RuleReservedSeparator, "identifier body contains a reserved separator")
	}
	return nil
}
