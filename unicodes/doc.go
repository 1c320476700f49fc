// Package unicodes provides the code-point classifications the WHATWG URL
// parsing pipeline is built on, together with adapters that bring wide-string
// input into the UTF-8 form the parser consumes.
//
// The ASCII-range classes (controls, digits, alphas, hex digits, the
// whitespace sets the parser trims and strips, the forbidden host code
// points) are exposed as bit sets so that membership tests stay branch-free
// and the sets can be composed. Classes that extend beyond ASCII - URL code
// points, noncharacters, surrogates - are exposed as predicates.
//
// Contents:
//   - Bit sets: C0Control, C0ControlOrSpace, ASCIITabOrNewline, ASCIIAlpha,
//     ASCIIDigit, ASCIIAlphanumeric, ASCIIHexDigit, SchemeCodePoint,
//     ForbiddenHost, ForbiddenOpaqueHost.
//   - Predicates: IsURLCodePoint, IsWindowsDriveLetter,
//     IsNormalizedWindowsDriveLetter, StartsWithWindowsDriveLetter.
//   - Helpers: Trim, Remove operating on a bit-set class.
//   - Adapters: FromUTF16, FromUTF32, FromBytes converting foreign encodings
//     to UTF-8 and rejecting invalid sequences.
//
// Example Usage:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/hueristiq/hq-go-whatwg-url/unicodes"
//	)
//
//	func main() {
//	    trimmed, changed := unicodes.Trim("  https://example.com ", unicodes.C0ControlOrSpace)
//
//	    fmt.Println(trimmed, changed)
//	}
//
// References:
// - WHATWG URL Standard, URL code points: https://url.spec.whatwg.org/#url-code-points
// - WHATWG Infra Standard, code points: https://infra.spec.whatwg.org/#code-points
package unicodes
