package dn

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndsWith(t *testing.T) {
	d := mustParse(t, "CN=leaf,OU=Sales,DC=example,DC=com")

	testcases := []struct {
		base     string
		expected bool
	}{
		{"OU=Sales,DC=example,DC=com", true},
		{"CN=leaf,OU=Sales,DC=example,DC=com", true},
		{"DC=example,DC=com", true}, // bare domain matches anything under it
		{"ou=sales,dc=example,dc=com", true},
		{"OU=Marketing,DC=example,DC=com", false},
		{"OU=Sales,DC=example,DC=org", false},
		{"CN=other,OU=Sales,DC=example,DC=com", false},
		{"CN=x,CN=leaf,OU=Sales,DC=example,DC=com", false}, // longer path cannot be a suffix
		{"OU=Sales", false},                                // no domain on the argument
	}
	for _, tc := range testcases {
		assert.Equal(t, tc.expected, d.EndsWith(mustParse(t, tc.base)), "EndsWith(%q)", tc.base)
	}
}

func TestEndsWithNoDomains(t *testing.T) {
	d := mustParse(t, "CN=leaf,OU=Sales,O=Example")
	assert.True(t, d.EndsWith(mustParse(t, "OU=Sales,O=Example")))
	assert.True(t, d.EndsWith(mustParse(t, "O=Example")))
	assert.True(t, d.EndsWith(New()), "the empty name matches everything without a domain")
	assert.False(t, d.EndsWith(mustParse(t, "OU=Sales")))
	assert.False(t, New().EndsWith(d))
}

func TestEndsWithString(t *testing.T) {
	d := mustParse(t, "CN=leaf,OU=Sales,DC=example,DC=com")

	assert.True(t, d.EndsWithString("dc=example,dc=com"))
	assert.True(t, d.EndsWithString("Sales,DC=EXAMPLE,DC=com"))
	assert.True(t, d.EndsWithString(""))
	assert.False(t, d.EndsWithString("DC=example"))

	// The textual and structural variants disagree by design: "OU=Sales"
	// is a structural container only when domains line up, and a textual
	// suffix only when it is literally at the end.
	assert.False(t, d.EndsWithString("OU=Sales"))
	assert.True(t, d.EndsWithString("ales,dc=example,dc=com"), "textual matching has no token boundaries")
}

func TestAppend(t *testing.T) {
	leaf := mustParse(t, "CN=web01")
	base := mustParse(t, "OU=Servers,DC=example,DC=com")
	assert.Equal(t, "CN=web01,OU=Servers,DC=example,DC=com", leaf.Append(base).String())
	assert.Equal(t, "CN=web01", leaf.String(), "append does not mutate")
	assert.Equal(t, "CN=web01", leaf.Append(New()).String())
}

func TestStrip(t *testing.T) {
	d := mustParse(t, "CN=leaf,OU=Sales,DC=example,DC=com")

	stripped, err := d.Strip(mustParse(t, "OU=Sales,DC=example,DC=com"))
	require.NoError(t, err)
	assert.Equal(t, "CN=leaf", stripped.String())

	stripped, err = d.Strip(mustParse(t, "DC=example,DC=com"))
	require.NoError(t, err)
	assert.Equal(t, "CN=leaf,OU=Sales", stripped.String())

	_, err = d.Strip(mustParse(t, "OU=Marketing,DC=example,DC=com"))
	assert.ErrorIs(t, err, ErrNotSubordinate)
}

func TestNamesSort(t *testing.T) {
	all := Names{
		mustParse(t, "DC=example,DC=com"),
		mustParse(t, "CN=b,OU=x,DC=example,DC=com"),
		mustParse(t, "OU=x,DC=example,DC=com"),
		mustParse(t, "CN=a,OU=x,DC=example,DC=com"),
	}
	sort.Sort(all)

	got := make([]string, len(all))
	for i, d := range all {
		got[i] = d.String()
	}
	assert.Equal(t, []string{
		"CN=a,OU=x,DC=example,DC=com",
		"CN=b,OU=x,DC=example,DC=com",
		"OU=x,DC=example,DC=com",
		"DC=example,DC=com",
	}, got)
}
