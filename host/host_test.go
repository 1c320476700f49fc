package host_test

import (
	"fmt"
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/hueristiq/hq-go-whatwg-url/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Domains(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input    string
		expected string
	}{
		{"example.com", "example.com"},
		{"EXAMPLE.com", "example.com"},
		{"ex%41mple.com", "example.com"},
		{"bücher.de", "xn--bcher-kva.de"},
		{"xn--bcher-kva.de", "xn--bcher-kva.de"},
		{"localhost", "localhost"},
		{"a", "a"},
		{"under_score", "under_score"},
		{"1.2.3.4.5.6", "1.2.3.4.5.6"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("Parse(%q)", c.input), func(t *testing.T) {
			t.Parallel()

			h, err := host.Parse(c.input, false, nil)

			require.NoError(t, err)
			assert.Equal(t, host.KindDomain, h.Kind())
			assert.Equal(t, c.expected, h.String())
		})
	}
}

func TestParse_DomainFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input        string
		expectedCode errors.Code
	}{
		{"exa mple.com", errors.DomainError},
		{"exam%23ple.com", errors.DomainError},
		{"%C2%AD", errors.DomainError},
		{"%C3%28.com", errors.CannotDecodeHostCodePoint},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("Parse(%q)", c.input), func(t *testing.T) {
			t.Parallel()

			_, err := host.Parse(c.input, false, nil)

			require.Error(t, err)
			assert.Equal(t, c.expectedCode, errors.CodeOf(err))
		})
	}
}

func TestParse_IPv4(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input    string
		expected string
	}{
		{"192.168.0.1", "192.168.0.1"},
		{"192.168.257", "192.168.1.1"},
		{"127.1", "127.0.0.1"},
		{"2130706433", "127.0.0.1"},
		{"0x7f000001", "127.0.0.1"},
		{"0x7F.0.0.1", "127.0.0.1"},
		{"017700000001", "127.0.0.1"},
		{"0300.0250.0.01", "192.168.0.1"},
		{"192.168.0.1.", "192.168.0.1"},
		{"0x", "0.0.0.0"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("Parse(%q)", c.input), func(t *testing.T) {
			t.Parallel()

			h, err := host.Parse(c.input, false, nil)

			require.NoError(t, err)
			assert.Equal(t, host.KindIPv4, h.Kind())
			assert.Equal(t, c.expected, h.String())
		})
	}
}

func TestParse_IPv4Overflow(t *testing.T) {
	t.Parallel()

	cases := []string{
		"4294967296",
		"256.0.0.1",
		"192.168.0.999999",
		"999999999999999999999",
	}

	for _, input := range cases {
		t.Run(fmt.Sprintf("Parse(%q)", input), func(t *testing.T) {
			t.Parallel()

			_, err := host.Parse(input, false, nil)

			require.Error(t, err)
			assert.Equal(t, errors.InvalidIPv4Address, errors.CodeOf(err))
		})
	}
}

func TestParse_IPv6(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input    string
		expected string
	}{
		{"[::]", "[::]"},
		{"[::1]", "[::1]"},
		{"[1::]", "[1::]"},
		{"[2001:db8:0:0:0:0:0:1]", "[2001:db8::1]"},
		{"[2001:DB8::1]", "[2001:db8::1]"},
		{"[1:0:0:2:0:0:0:3]", "[1:0:0:2::3]"},
		{"[::ffff:192.168.0.1]", "[::ffff:c0a8:1]"},
		{"[1:2:3:4:5:6:7:8]", "[1:2:3:4:5:6:7:8]"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("Parse(%q)", c.input), func(t *testing.T) {
			t.Parallel()

			h, err := host.Parse(c.input, false, nil)

			require.NoError(t, err)
			assert.Equal(t, host.KindIPv6, h.Kind())
			assert.Equal(t, c.expected, h.String())
		})
	}
}

func TestParse_IPv6Failures(t *testing.T) {
	t.Parallel()

	cases := []string{
		"[::1",
		"[]",
		"[:1]",
		"[1:2]",
		"[1::2::3]",
		"[1:2:3:4:5:6:7:8:9]",
		"[12345::]",
		"[::1.2.3]",
		"[::1.2.3.4.5]",
		"[::01.2.3.4]",
		"[::1.2.3.256]",
		"[ghi::]",
	}

	for _, input := range cases {
		t.Run(fmt.Sprintf("Parse(%q)", input), func(t *testing.T) {
			t.Parallel()

			_, err := host.Parse(input, false, nil)

			require.Error(t, err)
			assert.Equal(t, errors.InvalidIPv6Address, errors.CodeOf(err))
		})
	}
}

func TestParse_Opaque(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("ex ample", true, nil)

	require.Error(t, err)
	assert.Equal(t, errors.ForbiddenHostCodePoint, errors.CodeOf(err))

	h, err = host.Parse("ho%st", true, nil)

	require.NoError(t, err)
	assert.Equal(t, host.KindOpaque, h.Kind())
	assert.Equal(t, "ho%st", h.String())

	h, err = host.Parse("höst", true, nil)

	require.NoError(t, err)
	assert.Equal(t, "h%C3%B6st", h.String())

	h, err = host.Parse("", true, nil)

	require.NoError(t, err)
	assert.True(t, h.IsEmpty())
	assert.Equal(t, "", h.String())
}

func TestParse_EmptyDomain(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("", false, nil)

	require.NoError(t, err)
	assert.True(t, h.IsEmpty())
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"example.com",
		"192.168.1.1",
		"[2001:db8::1]",
		"[::ffff:c0a8:1]",
		"xn--bcher-kva.de",
	}

	for _, input := range inputs {
		t.Run(fmt.Sprintf("Parse(%q)", input), func(t *testing.T) {
			t.Parallel()

			first, err := host.Parse(input, false, nil)

			require.NoError(t, err)

			second, err := host.Parse(first.String(), false, nil)

			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}
