package schemes

import (
	"strings"
)

// special maps each special scheme to its default port. A nil entry means the
// scheme has no default port.
var special = map[string]*uint16{
	`ftp`:   portOf(21),  // File Transfer Protocol
	`file`:  nil,         // Local files
	`http`:  portOf(80),  // Hypertext Transfer Protocol
	`https`: portOf(443), // HTTP over TLS
	`ws`:    portOf(80),  // WebSocket
	`wss`:   portOf(443), // WebSocket over TLS
}

// IsSpecial reports whether the scheme is one of the special schemes of the
// WHATWG URL Standard. The lookup is case-insensitive and tolerates a
// trailing ":".
//
// Parameters:
//   - scheme (string): The scheme to test, e.g. "https" or "HTTPS:".
//
// Returns:
//   - is (bool): true when the scheme is special.
func IsSpecial(scheme string) (is bool) {
	_, is = special[normalize(scheme)]

	return
}

// DefaultPort returns the default port of a scheme. The lookup is
// case-insensitive and tolerates a trailing ":".
//
// Parameters:
//   - scheme (string): The scheme to look up, e.g. "https" or "HTTPS:".
//
// Returns:
//   - port (uint16): The default port, meaningful only when ok is true.
//   - ok (bool): true when the scheme is special and has a default port.
func DefaultPort(scheme string) (port uint16, ok bool) {
	p, known := special[normalize(scheme)]
	if !known || p == nil {
		return
	}

	port = *p
	ok = true

	return
}

// normalize lowercases a scheme and strips a single trailing ":".
func normalize(scheme string) (normalized string) {
	normalized = strings.TrimSuffix(strings.ToLower(scheme), ":")

	return
}

func portOf(port uint16) (p *uint16) {
	return &port
}
