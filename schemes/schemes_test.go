package schemes_test

import (
	"fmt"
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/schemes"
	"github.com/stretchr/testify/assert"
)

func TestIsSpecial(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scheme   string
		expected bool
	}{
		{"ftp", true},
		{"file", true},
		{"http", true},
		{"https", true},
		{"ws", true},
		{"wss", true},
		{"HTTPS", true},
		{"https:", true},
		{"gopher", false},
		{"mailto", false},
		{"", false},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("IsSpecial(%q)", c.scheme), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, schemes.IsSpecial(c.scheme))
		})
	}
}

func TestDefaultPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scheme       string
		expectedPort uint16
		expectedOK   bool
	}{
		{"ftp", 21, true},
		{"http", 80, true},
		{"https", 443, true},
		{"ws", 80, true},
		{"wss", 443, true},
		{"WSS:", 443, true},
		{"file", 0, false},
		{"mailto", 0, false},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("DefaultPort(%q)", c.scheme), func(t *testing.T) {
			t.Parallel()

			port, ok := schemes.DefaultPort(c.scheme)

			assert.Equal(t, c.expectedOK, ok)
			assert.Equal(t, c.expectedPort, port)
		})
	}
}
