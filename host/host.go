package host

import (
	"strings"

	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/hueristiq/hq-go-whatwg-url/percentencoding"
	"github.com/hueristiq/hq-go-whatwg-url/unicodes"
	"golang.org/x/net/idna"
)

// Kind identifies the variant a Host holds.
type Kind int

const (
	// KindEmpty is the empty host. It is distinct from an absent host, which
	// is represented by the absence of a Host value altogether.
	KindEmpty Kind = iota

	// KindDomain is an ASCII (possibly punycoded) domain.
	KindDomain

	// KindIPv4 is a 32-bit IPv4 address.
	KindIPv4

	// KindIPv6 is an IPv6 address of eight 16-bit pieces.
	KindIPv6

	// KindOpaque is the percent-encoded host form used by non-special
	// schemes.
	KindOpaque
)

// Host is a parsed URL host. The zero value is the empty host.
type Host struct {
	kind   Kind
	name   string
	v4     uint32
	v6     [8]uint16
	opaque string
}

// Empty returns the empty host.
//
// Returns:
//   - h (Host): A host of KindEmpty.
func Empty() (h Host) {
	return Host{kind: KindEmpty}
}

// Domain returns a domain host.
//
// Parameters:
//   - name (string): The ASCII domain, already through IDNA ToASCII.
//
// Returns:
//   - h (Host): A host of KindDomain.
func Domain(name string) (h Host) {
	return Host{kind: KindDomain, name: name}
}

// IPv4 returns an IPv4 host.
//
// Parameters:
//   - address (uint32): The address with the first octet in the high bits.
//
// Returns:
//   - h (Host): A host of KindIPv4.
func IPv4(address uint32) (h Host) {
	return Host{kind: KindIPv4, v4: address}
}

// IPv6 returns an IPv6 host.
//
// Parameters:
//   - pieces ([8]uint16): The eight 16-bit pieces of the address.
//
// Returns:
//   - h (Host): A host of KindIPv6.
func IPv6(pieces [8]uint16) (h Host) {
	return Host{kind: KindIPv6, v6: pieces}
}

// Opaque returns an opaque host.
//
// Parameters:
//   - value (string): The percent-encoded opaque host string.
//
// Returns:
//   - h (Host): A host of KindOpaque.
func Opaque(value string) (h Host) {
	return Host{kind: KindOpaque, opaque: value}
}

// Kind returns the variant the host holds.
//
// Returns:
//   - kind (Kind): The host variant.
func (h Host) Kind() (kind Kind) {
	return h.kind
}

// IsEmpty reports whether the host is the empty host.
//
// Returns:
//   - is (bool): true for KindEmpty.
func (h Host) IsEmpty() (is bool) {
	return h.kind == KindEmpty
}

// IPv4Address returns the 32-bit address of a KindIPv4 host. The value is
// meaningful only for that kind.
//
// Returns:
//   - address (uint32): The address with the first octet in the high bits.
func (h Host) IPv4Address() (address uint32) {
	return h.v4
}

// IPv6Pieces returns the pieces of a KindIPv6 host. The value is meaningful
// only for that kind.
//
// Returns:
//   - pieces ([8]uint16): The eight 16-bit pieces of the address.
func (h Host) IPv6Pieces() (pieces [8]uint16) {
	return h.v6
}

// String serializes the host to its canonical form: the domain or opaque
// string verbatim, an IPv4 address in dotted-quad form, an IPv6 address
// bracketed in its shortest form, and the empty string for the empty host.
//
// Returns:
//   - serialized (string): The canonical host string.
func (h Host) String() (serialized string) {
	switch h.kind {
	case KindDomain:
		serialized = h.name
	case KindIPv4:
		serialized = serializeIPv4(h.v4)
	case KindIPv6:
		serialized = "[" + serializeIPv6(h.v6) + "]"
	case KindOpaque:
		serialized = h.opaque
	case KindEmpty:
		serialized = ""
	}

	return
}

// toASCII is the IDNA profile the domain path runs under. The parameters are
// the ones the URL Standard fixes for domain-to-ASCII in the non-strict
// case: lookup mapping, the bidi rule, joiner checking, no hyphen checking,
// no STD3 restrictions, non-transitional processing, and no DNS length
// verification.
var toASCII = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.CheckHyphens(false),
	idna.CheckJoiners(true),
	idna.StrictDomainName(false),
	idna.Transitional(false),
	idna.VerifyDNSLength(false),
)

// Parse parses a URL host string per the WHATWG URL Standard.
//
// Parameters:
//   - input (string): The host text, without surrounding "//" or ":port".
//   - isOpaque (bool): true when the scheme is non-special, selecting the
//     opaque host path.
//   - sink (func(errors.Code)): Optional receiver for validation errors; may
//     be nil.
//
// Returns:
//   - h (Host): The parsed host, valid only when err is nil.
//   - err (error): A typed error from the errors package on failure.
func Parse(input string, isOpaque bool, sink func(code errors.Code)) (h Host, err error) {
	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			err = errors.New(errors.InvalidIPv6Address)

			return
		}

		var pieces [8]uint16

		pieces, err = parseIPv6(input[1 : len(input)-1])
		if err != nil {
			err = errors.Wrap(errors.InvalidIPv6Address, err)

			return
		}

		h = IPv6(pieces)

		return
	}

	if isOpaque {
		h, err = parseOpaque(input)

		return
	}

	if input == "" {
		h = Empty()

		return
	}

	decoded := percentencoding.Decode([]byte(input))

	domain, err := unicodes.FromBytes(decoded)
	if err != nil {
		err = errors.New(errors.CannotDecodeHostCodePoint)

		return
	}

	ascii, err := toASCII.ToASCII(domain)
	if err != nil {
		err = errors.Wrap(errors.DomainError, err)

		return
	}

	if ascii == "" {
		err = errors.New(errors.DomainError)

		return
	}

	for i := 0; i < len(ascii); i++ {
		if unicodes.ForbiddenHost.Test(uint(ascii[i])) {
			err = errors.New(errors.DomainError)

			return
		}
	}

	address, isIPv4, err := parseIPv4(ascii, sink)
	if err != nil {
		err = errors.Wrap(errors.InvalidIPv4Address, err)

		return
	}

	if isIPv4 {
		h = IPv4(address)

		return
	}

	h = Domain(ascii)

	return
}

// parseOpaque parses the host of a non-special scheme: the forbidden code
// points are rejected and every code point is carried percent-encoded with
// the C0-control set.
func parseOpaque(input string) (h Host, err error) {
	if input == "" {
		h = Empty()

		return
	}

	for _, r := range input {
		if r < 0x100 && unicodes.ForbiddenOpaqueHost.Test(uint(r)) {
			err = errors.New(errors.ForbiddenHostCodePoint)

			return
		}
	}

	var builder strings.Builder

	for _, r := range input {
		builder.WriteString(percentencoding.EncodeRune(r, percentencoding.C0Control))
	}

	h = Opaque(builder.String())

	return
}
