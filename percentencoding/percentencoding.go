package percentencoding

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/willf/bitset"
)

// Set is a percent-encode set: the bytes that must be written as "%HH"
// triplets in a given syntactic slot.
type Set struct {
	members *bitset.BitSet
}

// The encode sets of the WHATWG URL Standard. Each set is the C0-control set
// plus the extra bytes listed for it.
var (
	// C0Control holds the C0 controls and every byte at or above 0x7F.
	C0Control = build()

	// Fragment is C0Control plus space, '"', "<", ">" and "`".
	Fragment = build(' ', '"', '<', '>', '`')

	// Query is C0Control plus space, '"', "#", "<" and ">". It applies to
	// queries of non-special schemes.
	Query = build(' ', '"', '#', '<', '>')

	// SpecialQuery is Query plus "'". It applies to queries of special
	// schemes.
	SpecialQuery = build(' ', '"', '#', '<', '>', '\'')

	// Path is Query plus "?", "`", "{" and "}".
	Path = build(' ', '"', '#', '<', '>', '?', '`', '{', '}')

	// UserInfo is Path plus "/", ":", ";", "=", "@", "[", "\", "]", "^"
	// and "|".
	UserInfo = build(' ', '"', '#', '<', '>', '?', '`', '{', '}', '/', ':', ';', '=', '@', '[', '\\', ']', '^', '|')
)

// Contains reports whether the byte belongs to the set.
//
// Parameters:
//   - b (byte): The byte to test.
//
// Returns:
//   - contained (bool): true when b must be percent-encoded under the set.
func (s *Set) Contains(b byte) (contained bool) {
	return s.members.Test(uint(b))
}

// Encode renders a single byte against the set: either the byte itself or
// its "%HH" triplet with uppercase hex digits.
//
// Parameters:
//   - b (byte): The byte to encode.
//   - set (*Set): The encode set deciding whether b is escaped.
//
// Returns:
//   - encoded (string): A one- or three-byte ASCII string.
func Encode(b byte, set *Set) (encoded string) {
	if set.Contains(b) {
		encoded = fmt.Sprintf("%%%02X", b)

		return
	}

	encoded = string(b)

	return
}

// EncodeRune renders a code point against the set. The code point is
// expanded to its UTF-8 bytes and each byte is encoded individually; since
// every set contains all bytes at or above 0x7F, non-ASCII code points are
// always fully escaped.
//
// Parameters:
//   - r (rune): The code point to encode.
//   - set (*Set): The encode set deciding which bytes are escaped.
//
// Returns:
//   - encoded (string): The encoded form of the code point.
func EncodeRune(r rune, set *Set) (encoded string) {
	if r < utf8.RuneSelf {
		encoded = Encode(byte(r), set)

		return
	}

	var buf [utf8.UTFMax]byte

	n := utf8.EncodeRune(buf[:], r)

	var builder strings.Builder

	for i := 0; i < n; i++ {
		builder.WriteString(Encode(buf[i], set))
	}

	encoded = builder.String()

	return
}

// Decode replaces every well-formed "%HH" triplet in the input with its byte
// value and passes every other byte through verbatim. A lone "%" is not an
// error; it is emitted as a literal "%".
//
// Parameters:
//   - input ([]byte): The bytes to decode.
//
// Returns:
//   - decoded ([]byte): The decoded byte stream.
func Decode(input []byte) (decoded []byte) {
	decoded = make([]byte, 0, len(input))

	for i := 0; i < len(input); i++ {
		if input[i] == '%' && i+2 < len(input) && isHex(input[i+1]) && isHex(input[i+2]) {
			decoded = append(decoded, hexValue(input[i+1])<<4|hexValue(input[i+2]))

			i += 2

			continue
		}

		decoded = append(decoded, input[i])
	}

	return
}

// DecodeString is Decode over a string.
//
// Parameters:
//   - input (string): The string to decode.
//
// Returns:
//   - decoded (string): The decoded form, which may contain arbitrary bytes.
func DecodeString(input string) (decoded string) {
	decoded = string(Decode([]byte(input)))

	return
}

// IsPercentEncoded reports whether the string begins with a well-formed
// "%HH" triplet.
//
// Parameters:
//   - s (string): The string to test.
//
// Returns:
//   - is (bool): true when the first three bytes form "%HH".
func IsPercentEncoded(s string) (is bool) {
	return len(s) >= 3 && s[0] == '%' && isHex(s[1]) && isHex(s[2])
}

func isHex(b byte) (is bool) {
	return (b >= '0' && b <= '9') || (b >= 'A' && b <= 'F') || (b >= 'a' && b <= 'f')
}

func hexValue(b byte) (value byte) {
	switch {
	case b >= '0' && b <= '9':
		value = b - '0'
	case b >= 'A' && b <= 'F':
		value = b - 'A' + 10
	default:
		value = b - 'a' + 10
	}

	return
}

// build constructs a set holding the C0 controls, every byte at or above
// 0x7F, and the given extra bytes.
func build(extras ...byte) (set *Set) {
	members := bitset.New(256)

	for b := uint(0x00); b <= 0x1f; b++ {
		members.Set(b)
	}

	for b := uint(0x7f); b <= 0xff; b++ {
		members.Set(b)
	}

	for _, b := range extras {
		members.Set(uint(b))
	}

	set = &Set{members: members}

	return
}
