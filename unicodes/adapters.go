package unicodes

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/hueristiq/hq-go-whatwg-url/errors"
)

// FromUTF16 converts a UTF-16 code unit sequence to UTF-8. Unlike the
// standard library decoder it rejects unpaired surrogates instead of
// substituting U+FFFD, so malformed input is surfaced to the caller rather
// than silently altered.
//
// Parameters:
//   - units ([]uint16): The UTF-16 code units.
//
// Returns:
//   - s (string): The UTF-8 form of the input.
//   - err (error): errors.InvalidUnicodeCharacter on an unpaired surrogate.
func FromUTF16(units []uint16) (s string, err error) {
	var builder strings.Builder

	builder.Grow(len(units))

	for i := 0; i < len(units); i++ {
		unit := rune(units[i])

		switch {
		case unit >= 0xd800 && unit <= 0xdbff:
			if i+1 >= len(units) || units[i+1] < 0xdc00 || units[i+1] > 0xdfff {
				err = errors.New(errors.InvalidUnicodeCharacter)

				return
			}

			builder.WriteRune(utf16.DecodeRune(unit, rune(units[i+1])))

			i++
		case unit >= 0xdc00 && unit <= 0xdfff:
			err = errors.New(errors.InvalidUnicodeCharacter)

			return
		default:
			builder.WriteRune(unit)
		}
	}

	s = builder.String()

	return
}

// FromUTF32 converts a sequence of Unicode code points to UTF-8, rejecting
// surrogates and values beyond U+10FFFF.
//
// Parameters:
//   - points ([]rune): The code points.
//
// Returns:
//   - s (string): The UTF-8 form of the input.
//   - err (error): errors.InvalidUnicodeCharacter on an invalid code point.
func FromUTF32(points []rune) (s string, err error) {
	var builder strings.Builder

	builder.Grow(len(points))

	for _, point := range points {
		if point < 0 || point > utf8.MaxRune || IsSurrogate(point) {
			err = errors.New(errors.InvalidUnicodeCharacter)

			return
		}

		builder.WriteRune(point)
	}

	s = builder.String()

	return
}

// FromBytes validates that a byte slice is well-formed UTF-8 and returns it
// as a string.
//
// Parameters:
//   - b ([]byte): The candidate UTF-8 bytes.
//
// Returns:
//   - s (string): The input as a string, valid only when err is nil.
//   - err (error): errors.InvalidUnicodeCharacter on malformed UTF-8.
func FromBytes(b []byte) (s string, err error) {
	if !utf8.Valid(b) {
		err = errors.New(errors.InvalidUnicodeCharacter)

		return
	}

	s = string(b)

	return
}
