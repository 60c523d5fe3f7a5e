package dn

import (
	"errors"
	"fmt"
)

// ErrNotSubordinate is returned by Strip when the name does not live under
// the given base.
var ErrNotSubordinate = errors.New("not a subordinate")

// FormatError reports a malformed attribute token: one that does not split
// into exactly one type and one value on an unescaped '=', or that violates
// the strict RFC 4514 grammar.
type FormatError struct {
	Token  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("dn: %s in %q", e.Reason, e.Token)
	}
	return fmt.Sprintf("dn: malformed attribute token %q", e.Token)
}
