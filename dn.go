// Package dn parses and transforms hierarchical distinguished names as used
// in LDAP entries and X.509 subjects.
//
// A name is an ordered sequence of type=value attributes, leaf-most first
// ("CN=web01,OU=Servers,DC=example,DC=com"). Two grammars are supported:
// Parse accepts the lenient directory-style form where only "\," and "\="
// are recognized escapes, ParseRFC4514 accepts the strict RFC 4514 form
// with hex escapes and BER-encoded values.
//
// DN values are immutable; every derived view and transform returns a new
// value, so unsynchronized concurrent use is safe.
package dn

import (
	"strings"
)

// Attribute is a single type=value component of a distinguished name.
// Types are stored upper-cased and always compared case-insensitively.
type Attribute struct {
	Type  string
	Value string
}

func (a Attribute) String() string {
	return a.Type + "=" + a.Value
}

func (a Attribute) isDC() bool {
	return strings.EqualFold(a.Type, "DC")
}

func (a Attribute) equalFold(o Attribute) bool {
	return strings.EqualFold(a.Type, o.Type) && strings.EqualFold(a.Value, o.Value)
}

// DN is an immutable distinguished name: an ordered attribute sequence,
// leaf-most attribute first, plus its canonical string form fixed at
// construction time.
type DN struct {
	attrs []Attribute
	raw   string
}

// Parse builds a DN from the lenient directory grammar. Empty or blank
// input yields the empty name. Input without an unescaped '=' is shorthand
// for a bare common name and parses as CN=<input>. Otherwise the input is
// split on unescaped commas and each token must contain exactly one
// unescaped '='; anything else fails with a *FormatError.
//
// The parsed name stringifies back to the input verbatim, escapes included.
func Parse(s string) (*DN, error) {
	if strings.TrimSpace(s) == "" {
		return &DN{}, nil
	}
	if !containsUnescaped(s, '=') {
		return &DN{
			attrs: []Attribute{{Type: "CN", Value: s}},
			raw:   "CN=" + s,
		}, nil
	}
	var attrs []Attribute
	for _, token := range splitUnescaped(s, ',') {
		token = strings.ReplaceAll(token, `\,`, ",")
		parts := splitUnescaped(token, '=')
		if len(parts) != 2 {
			return nil, &FormatError{Token: token}
		}
		attrs = append(attrs, Attribute{
			Type:  strings.ToUpper(strings.TrimSpace(parts[0])),
			Value: strings.ReplaceAll(strings.TrimSpace(parts[1]), `\=`, "="),
		})
	}
	return &DN{attrs: attrs, raw: s}, nil
}

// New builds a DN from attributes in leaf-first order. The canonical form
// is the comma-join of each attribute's TYPE=value form.
func New(attrs ...Attribute) *DN {
	d := &DN{attrs: make([]Attribute, 0, len(attrs))}
	for _, a := range attrs {
		d.attrs = append(d.attrs, Attribute{
			Type:  strings.ToUpper(strings.TrimSpace(a.Type)),
			Value: a.Value,
		})
	}
	d.raw = joinAttrs(d.attrs)
	return d
}

// String returns the canonical form: the original input for parsed names,
// the comma-joined attribute forms for names built programmatically.
func (d *DN) String() string {
	return d.raw
}

// Subject renders the name in the slash-delimited form external signing
// tools expect, e.g. "/CN=web01/O=Example". Attributes keep their stored
// leaf-first order. This is a distinct convention from String, not a
// reformatting of it.
func (d *DN) Subject() string {
	var b strings.Builder
	for _, a := range d.attrs {
		b.WriteByte('/')
		b.WriteString(a.String())
	}
	return b.String()
}

// Len returns the number of attributes.
func (d *DN) Len() int {
	return len(d.attrs)
}

// IsEmpty reports whether the name has no attributes.
func (d *DN) IsEmpty() bool {
	return len(d.attrs) == 0
}

// Attributes returns a copy of the attribute sequence, leaf-first.
func (d *DN) Attributes() []Attribute {
	attrs := make([]Attribute, len(d.attrs))
	copy(attrs, d.attrs)
	return attrs
}

// CN returns the value of the first CN attribute, or "" if there is none.
func (d *DN) CN() string {
	for _, a := range d.attrs {
		if strings.EqualFold(a.Type, "CN") {
			return a.Value
		}
	}
	return ""
}

// Get looks up an attribute value by type, case-insensitively.
//
// Type "DC" is special: the values of all DC attributes are joined with
// '.' in order, so "DC=example,DC=com" yields "example.com", and ok is
// always true even when the join is empty. For every other type the first
// matching attribute's value is returned; ok is false when the type is
// blank or absent.
func (d *DN) Get(attrType string) (value string, ok bool) {
	if strings.TrimSpace(attrType) == "" {
		return "", false
	}
	if strings.EqualFold(attrType, "DC") {
		var parts []string
		for _, a := range d.attrs {
			if a.isDC() {
				parts = append(parts, a.Value)
			}
		}
		return strings.Join(parts, "."), true
	}
	for _, a := range d.attrs {
		if strings.EqualFold(a.Type, attrType) {
			return a.Value, true
		}
	}
	return "", false
}

// Domain returns the sub-name of all DC attributes in original order.
func (d *DN) Domain() *DN {
	var attrs []Attribute
	for _, a := range d.attrs {
		if a.isDC() {
			attrs = append(attrs, a)
		}
	}
	return &DN{attrs: attrs, raw: joinAttrs(attrs)}
}

// Path returns the sub-name of all non-DC attributes in original order,
// i.e. the organizational container chain.
func (d *DN) Path() *DN {
	var attrs []Attribute
	for _, a := range d.attrs {
		if !a.isDC() {
			attrs = append(attrs, a)
		}
	}
	return &DN{attrs: attrs, raw: joinAttrs(attrs)}
}

// Parent returns the name with the leaf-most attribute removed. The parent
// of the empty name is the empty name.
func (d *DN) Parent() *DN {
	if len(d.attrs) == 0 {
		return &DN{}
	}
	attrs := make([]Attribute, len(d.attrs)-1)
	copy(attrs, d.attrs[1:])
	return &DN{attrs: attrs, raw: joinAttrs(attrs)}
}

func joinAttrs(attrs []Attribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

// containsUnescaped reports whether c occurs in s at a position not
// preceded by a backslash.
func containsUnescaped(s string, c byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == c && (i == 0 || s[i-1] != '\\') {
			return true
		}
	}
	return false
}

// splitUnescaped splits s on every occurrence of c not preceded by a
// backslash. The escapes themselves are left in place.
func splitUnescaped(s string, c byte) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c && (i == 0 || s[i-1] != '\\') {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
