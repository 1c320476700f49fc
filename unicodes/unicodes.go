package unicodes

import (
	"strings"

	"github.com/willf/bitset"
)

// The ASCII-range code-point classes used throughout the parsing pipeline.
// Each set holds byte values 0x00-0xFF; membership of a rune is tested with
// Test(uint(r)), which is false for any rune above the set's range.
var (
	// C0Control holds U+0000 through U+001F.
	C0Control = newSet(rangeOf(0x00, 0x1f))

	// C0ControlOrSpace is the class the parser trims from both ends of its
	// input: the C0 controls and U+0020 SPACE.
	C0ControlOrSpace = newSet(rangeOf(0x00, 0x20))

	// ASCIITabOrNewline is the class the parser strips from the interior of
	// its input: tab, line feed, and carriage return.
	ASCIITabOrNewline = newSet([]uint{0x09, 0x0a, 0x0d})

	// ASCIIDigit holds "0" through "9".
	ASCIIDigit = newSet(rangeOf('0', '9'))

	// ASCIIAlpha holds "A" through "Z" and "a" through "z".
	ASCIIAlpha = newSet(rangeOf('A', 'Z'), rangeOf('a', 'z'))

	// ASCIIAlphanumeric is the union of ASCIIAlpha and ASCIIDigit.
	ASCIIAlphanumeric = newSet(rangeOf('0', '9'), rangeOf('A', 'Z'), rangeOf('a', 'z'))

	// ASCIIHexDigit holds "0"-"9", "A"-"F" and "a"-"f".
	ASCIIHexDigit = newSet(rangeOf('0', '9'), rangeOf('A', 'F'), rangeOf('a', 'f'))

	// SchemeCodePoint holds the code points allowed after the first character
	// of a scheme: ASCII alphanumerics plus "+", "-" and ".".
	SchemeCodePoint = newSet(rangeOf('0', '9'), rangeOf('A', 'Z'), rangeOf('a', 'z'), []uint{'+', '-', '.'})

	// ForbiddenHost holds the code points that may never appear in a domain
	// or IP host: NUL, tab, LF, CR, space, "#", "%", "/", ":", "?", "@",
	// "[", "\" and "]".
	ForbiddenHost = newSet([]uint{0x00, 0x09, 0x0a, 0x0d, ' ', '#', '%', '/', ':', '?', '@', '[', '\\', ']'})

	// ForbiddenOpaqueHost holds the code points that may never appear in an
	// opaque host: the C0 controls, space, "#", "/", ":", "<", ">", "?",
	// "@", "[", "\", "]", "^" and "|". "%" is allowed; opaque hosts keep
	// their percent-encoded bytes.
	ForbiddenOpaqueHost = newSet(rangeOf(0x00, 0x1f), []uint{' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|'})
)

// urlCodePointExtras holds the ASCII punctuation allowed in URL code points
// beyond alphanumerics.
var urlCodePointExtras = newSet([]uint{'!', '$', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/', ':', ';', '=', '?', '@', '_', '~'})

// IsURLCodePoint reports whether a code point may appear verbatim in a URL
// path, query, or fragment: ASCII alphanumerics, a small punctuation set, and
// any code point at or above U+00A0 that is neither a surrogate nor a
// noncharacter.
//
// Parameters:
//   - r (rune): The code point to classify.
//
// Returns:
//   - is (bool): true when r is a URL code point.
func IsURLCodePoint(r rune) (is bool) {
	if r < 0x80 {
		return ASCIIAlphanumeric.Test(uint(r)) || urlCodePointExtras.Test(uint(r))
	}

	if r < 0xa0 || r > 0x10fffd {
		return
	}

	if IsSurrogate(r) || IsNoncharacter(r) {
		return
	}

	is = true

	return
}

// IsSurrogate reports whether the code point lies in the surrogate range
// U+D800 through U+DFFF.
//
// Parameters:
//   - r (rune): The code point to classify.
//
// Returns:
//   - is (bool): true for surrogates.
func IsSurrogate(r rune) (is bool) {
	return r >= 0xd800 && r <= 0xdfff
}

// IsNoncharacter reports whether the code point is a Unicode noncharacter:
// U+FDD0 through U+FDEF, or any code point whose low 16 bits are FFFE or
// FFFF.
//
// Parameters:
//   - r (rune): The code point to classify.
//
// Returns:
//   - is (bool): true for noncharacters.
func IsNoncharacter(r rune) (is bool) {
	if r >= 0xfdd0 && r <= 0xfdef {
		is = true

		return
	}

	low := r & 0xffff

	is = low == 0xfffe || low == 0xffff

	return
}

// IsWindowsDriveLetter reports whether s is exactly two code points, the
// first an ASCII alpha and the second ":" or "|".
//
// Parameters:
//   - s (string): The candidate segment.
//
// Returns:
//   - is (bool): true for Windows drive letters.
func IsWindowsDriveLetter(s string) (is bool) {
	return len(s) == 2 && ASCIIAlpha.Test(uint(s[0])) && (s[1] == ':' || s[1] == '|')
}

// IsNormalizedWindowsDriveLetter reports whether s is a Windows drive letter
// whose second code point is ":".
//
// Parameters:
//   - s (string): The candidate segment.
//
// Returns:
//   - is (bool): true for normalized Windows drive letters.
func IsNormalizedWindowsDriveLetter(s string) (is bool) {
	return len(s) == 2 && ASCIIAlpha.Test(uint(s[0])) && s[1] == ':'
}

// StartsWithWindowsDriveLetter reports whether s begins with a Windows drive
// letter that is either the whole string or followed by "/", "\", "?" or
// "#".
//
// Parameters:
//   - s (string): The input to test.
//
// Returns:
//   - starts (bool): true when s starts with a Windows drive letter.
func StartsWithWindowsDriveLetter(s string) (starts bool) {
	if len(s) < 2 || !IsWindowsDriveLetter(s[:2]) {
		return
	}

	starts = len(s) == 2 || s[2] == '/' || s[2] == '\\' || s[2] == '?' || s[2] == '#'

	return
}

// Trim removes the leading and trailing bytes of s that belong to the class.
//
// Parameters:
//   - s (string): The input string.
//   - class (*bitset.BitSet): The byte class to trim.
//
// Returns:
//   - trimmed (string): The input without leading and trailing class bytes.
//   - changed (bool): true when anything was removed.
func Trim(s string, class *bitset.BitSet) (trimmed string, changed bool) {
	start := 0
	for start < len(s) && class.Test(uint(s[start])) {
		start++
	}

	end := len(s)
	for end > start && class.Test(uint(s[end-1])) {
		end--
	}

	trimmed = s[start:end]
	changed = start > 0 || end < len(s)

	return
}

// Remove drops every byte of s that belongs to the class.
//
// Parameters:
//   - s (string): The input string.
//   - class (*bitset.BitSet): The byte class to remove.
//
// Returns:
//   - removed (string): The input without class bytes.
//   - changed (bool): true when anything was removed.
func Remove(s string, class *bitset.BitSet) (removed string, changed bool) {
	if strings.IndexFunc(s, func(r rune) bool { return r < 0x100 && class.Test(uint(r)) }) < 0 {
		removed = s

		return
	}

	var builder strings.Builder

	builder.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if class.Test(uint(s[i])) {
			changed = true

			continue
		}

		builder.WriteByte(s[i])
	}

	removed = builder.String()

	return
}

// newSet builds a bit set over byte values from the given groups of members.
func newSet(groups ...[]uint) (set *bitset.BitSet) {
	set = bitset.New(256)

	for _, group := range groups {
		for _, member := range group {
			set.Set(member)
		}
	}

	return
}

// rangeOf enumerates the inclusive byte range [from, to].
func rangeOf(from, to uint) (members []uint) {
	for member := from; member <= to; member++ {
		members = append(members, member)
	}

	return
}
