package dn

import (
	enchex "encoding/hex"
	"strings"
	"unicode/utf8"

	ber "github.com/go-asn1-ber/asn1-ber"
)

// ParseRFC4514 builds a DN from the strict RFC 4514 grammar: the full
// backslash escape set, "\XX" hex-encoded octets, unescaped leading and
// trailing spaces ignored, and "#"-prefixed hex strings decoded as BER
// values. Multi-valued RDN components joined with '+' are flattened into
// consecutive attributes of the flat sequence model.
//
// Unlike Parse, a strict-parsed name stringifies to its re-escaped
// canonical form (see Canonical), not to the input text.
func ParseRFC4514(s string) (*DN, error) {
	var (
		attrs    []Attribute
		attrType string
		buffer   strings.Builder
		escaping bool
	)

	trailingSpaces := 0
	takeBuffer := func() string {
		v := buffer.String()
		v = v[:len(v)-trailingSpaces]
		buffer.Reset()
		trailingSpaces = 0
		return v
	}

	for i := 0; i < len(s); i++ {
		char := s[i]
		switch {
		case escaping:
			escaping = false
			trailingSpaces = 0
			switch char {
			case ' ', '"', '#', '+', ',', ';', '<', '=', '>', '\\':
				buffer.WriteByte(char)
				continue
			}
			// Not a special character, must be a hex encoded octet.
			if i+1 >= len(s) {
				return nil, &FormatError{Token: s, Reason: "truncated escape sequence"}
			}
			octet, err := enchex.DecodeString(s[i : i+2])
			if err != nil {
				return nil, &FormatError{Token: s[i : i+2], Reason: "invalid hex escape"}
			}
			buffer.WriteByte(octet[0])
			i++
		case char == '\\':
			escaping = true
			trailingSpaces = 0
		case char == '=':
			if attrType != "" {
				return nil, &FormatError{Token: s, Reason: "unescaped '=' in attribute value"}
			}
			attrType = takeBuffer()
			// A '#' straight after '=' introduces a hex string holding a
			// BER-encoded value; decode it and fast-forward past it.
			if i+1 < len(s) && s[i+1] == '#' {
				i += 2
				end := strings.IndexAny(s[i:], ",+;")
				data := s[i:]
				if end > 0 {
					data = s[i : i+end]
				}
				raw, err := enchex.DecodeString(data)
				if err != nil {
					return nil, &FormatError{Token: data, Reason: "invalid BER hex string"}
				}
				packet, err := ber.DecodePacketErr(raw)
				if err != nil {
					return nil, &FormatError{Token: data, Reason: "invalid BER value"}
				}
				buffer.WriteString(packet.Data.String())
				i += len(data) - 1
			}
		case char == ',' || char == '+' || char == ';':
			if attrType == "" {
				return nil, &FormatError{Token: s, Reason: "incomplete type, value pair"}
			}
			attrs = append(attrs, Attribute{
				Type:  strings.ToUpper(attrType),
				Value: takeBuffer(),
			})
			attrType = ""
		case char == ' ' && buffer.Len() == 0:
			// unescaped leading spaces are not part of the token
		default:
			if char == ' ' {
				trailingSpaces++
			} else {
				trailingSpaces = 0
			}
			buffer.WriteByte(char)
		}
	}
	if escaping {
		return nil, &FormatError{Token: s, Reason: "truncated escape sequence"}
	}
	if buffer.Len() > 0 || attrType != "" {
		if attrType == "" {
			return nil, &FormatError{Token: s, Reason: "incomplete type, value pair"}
		}
		attrs = append(attrs, Attribute{
			Type:  strings.ToUpper(attrType),
			Value: takeBuffer(),
		})
	}

	d := &DN{attrs: attrs}
	d.raw = d.Canonical()
	return d, nil
}

// EscapeValue escapes an attribute value for the strict RFC 4514 form:
// special characters get a backslash, leading and trailing spaces are
// escaped so the parser keeps them, and control characters and bytes that
// are not part of a valid UTF-8 sequence become "\XX" hex escapes. Any
// byte string survives an escape/parse round trip unchanged.
func EscapeValue(value string) string {
	var b strings.Builder
	for i := 0; i < len(value); {
		r, size := utf8.DecodeRuneInString(value[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte('\\')
			b.WriteString(enchex.EncodeToString([]byte{value[i]}))
			i++
			continue
		}
		switch r {
		case ',', '+', '"', '\\', '<', '>', ';', '#', '=':
			b.WriteByte('\\')
			b.WriteRune(r)
		case ' ':
			if i == 0 || i+size == len(value) {
				b.WriteByte('\\')
			}
			b.WriteByte(' ')
		default:
			if r < 32 {
				b.WriteByte('\\')
				b.WriteString(enchex.EncodeToString([]byte{byte(r)}))
			} else {
				b.WriteString(value[i : i+size])
			}
		}
		i += size
	}
	return b.String()
}

// Canonical renders the name with lower-cased types and strictly escaped
// values, comma-joined. Unlike String it is independent of how the name was
// constructed, so it suits byte-wise comparison and map keys.
func (d *DN) Canonical() string {
	parts := make([]string, len(d.attrs))
	for i, a := range d.attrs {
		parts[i] = strings.ToLower(a.Type) + "=" + EscapeValue(a.Value)
	}
	return strings.Join(parts, ",")
}
