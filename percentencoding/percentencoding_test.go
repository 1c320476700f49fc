package percentencoding_test

import (
	"fmt"
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/percentencoding"
	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		b        byte
		set      *percentencoding.Set
		expected string
	}{
		{' ', percentencoding.C0Control, " "},
		{' ', percentencoding.Fragment, "%20"},
		{0x00, percentencoding.C0Control, "%00"},
		{0x7f, percentencoding.C0Control, "%7F"},
		{'#', percentencoding.Fragment, "#"},
		{'#', percentencoding.Query, "%23"},
		{'\'', percentencoding.Query, "'"},
		{'\'', percentencoding.SpecialQuery, "%27"},
		{'?', percentencoding.Query, "?"},
		{'?', percentencoding.Path, "%3F"},
		{'{', percentencoding.Path, "%7B"},
		{'/', percentencoding.Path, "/"},
		{'/', percentencoding.UserInfo, "%2F"},
		{':', percentencoding.UserInfo, "%3A"},
		{'|', percentencoding.UserInfo, "%7C"},
		{'%', percentencoding.UserInfo, "%"},
		{'a', percentencoding.UserInfo, "a"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("Encode(%q)", c.b), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, percentencoding.Encode(c.b, c.set))
		})
	}
}

func TestEncodeRune(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", percentencoding.EncodeRune('a', percentencoding.Path))
	assert.Equal(t, "%C3%A9", percentencoding.EncodeRune('é', percentencoding.C0Control))
	assert.Equal(t, "%E2%98%83", percentencoding.EncodeRune('☃', percentencoding.Path))
}

func TestDecodeString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input    string
		expected string
	}{
		{"abc", "abc"},
		{"a%2Fb", "a/b"},
		{"a%2fb", "a/b"},
		{"%41%42", "AB"},
		{"%", "%"},
		{"%1", "%1"},
		{"%zz", "%zz"},
		{"100%", "100%"},
		{"%25", "%"},
		{"%C3%A9", "é"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("DecodeString(%q)", c.input), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, percentencoding.DecodeString(c.input))
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	sets := map[string]*percentencoding.Set{
		"C0Control":    percentencoding.C0Control,
		"Fragment":     percentencoding.Fragment,
		"Query":        percentencoding.Query,
		"SpecialQuery": percentencoding.SpecialQuery,
		"Path":         percentencoding.Path,
		"UserInfo":     percentencoding.UserInfo,
	}

	for name, set := range sets {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			for b := 0; b < 256; b++ {
				decoded := percentencoding.Decode([]byte(percentencoding.Encode(byte(b), set)))

				assert.Equal(t, []byte{byte(b)}, decoded)
			}
		})
	}
}

func TestIsPercentEncoded(t *testing.T) {
	t.Parallel()

	assert.True(t, percentencoding.IsPercentEncoded("%2F"))
	assert.True(t, percentencoding.IsPercentEncoded("%2fabc"))
	assert.False(t, percentencoding.IsPercentEncoded("%2"))
	assert.False(t, percentencoding.IsPercentEncoded("%zz"))
	assert.False(t, percentencoding.IsPercentEncoded("abc"))
}
