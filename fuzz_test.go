//go:build go1.18
// +build go1.18

package dn

import "testing"

func FuzzParse(f *testing.F) {

	f.Add("test")
	f.Add("CN=web01,OU=Servers,DC=example,DC=com")
	f.Add(`CN=a\,b,O=c`)
	f.Add("CN=a,b")
	f.Add("CN=a,O=b=c")

	f.Fuzz(func(t *testing.T, input string) {
		_, _ = Parse(input)
	})
}

func FuzzParseRFC4514(f *testing.F) {

	f.Add("*")
	f.Add("cn=Jim\\0Test")
	f.Add("cn=Jim\\0")
	f.Add("DC=example,=net")
	f.Add("o=a+o=B")
	f.Add("1.3.6.1.4.1.1466.0=#04024869")

	f.Fuzz(func(t *testing.T, input string) {
		_, _ = ParseRFC4514(input)
	})
}

func FuzzEscapeValue(f *testing.F) {

	f.Add("a\x00b(c)d*e\\f")
	f.Add("Lučić")
	f.Add(" leading and trailing ")

	f.Fuzz(func(t *testing.T, input string) {
		d, err := ParseRFC4514("cn=" + EscapeValue(input))
		if err != nil {
			t.Errorf("escaped value %q does not parse: %v", input, err)
			return
		}
		if got := d.CN(); got != input {
			t.Errorf("escape round trip changed %q to %q", input, got)
		}
	})
}
