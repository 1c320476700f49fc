// Package percentencoding implements the percent-encoding engine of the
// WHATWG URL Standard: the encode sets that decide which bytes are written as
// "%HH" triplets, and the encode/decode primitives built on them.
//
// An encode set is a predicate over bytes. The standard defines them by
// composition: the C0-control set is the base, and the fragment, query, path,
// and userinfo sets each add further bytes. Which set applies to a byte is
// decided by the parser state appending it, never by the byte itself.
//
// Decoding is deliberately lenient: a "%" that is not followed by two hex
// digits is passed through verbatim, exactly as the standard requires. No
// primitive in this package fails; error handling belongs entirely to the
// call sites.
//
// Contents:
//   - Sets: C0Control, Fragment, Query, SpecialQuery, Path, UserInfo.
//   - Encode, EncodeRune: byte and code-point encoding against a set.
//   - Decode, DecodeString: lenient percent-decoding.
//   - IsPercentEncoded: "%HH" prefix test.
//
// Example Usage:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/hueristiq/hq-go-whatwg-url/percentencoding"
//	)
//
//	func main() {
//	    fmt.Println(percentencoding.EncodeRune(' ', percentencoding.Fragment)) // %20
//	    fmt.Println(percentencoding.DecodeString("a%2Fb%"))                    // a/b%
//	}
//
// References:
// - WHATWG URL Standard, percent-encoded bytes: https://url.spec.whatwg.org/#percent-encoded-bytes
package percentencoding
