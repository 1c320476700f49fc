// Package host implements the host parser of the WHATWG URL Standard: the
// dispatch over domain, IPv4, IPv6, and opaque hosts, together with the
// canonical serialization of each form.
//
// A parsed host is represented as a typed variant rather than a plain
// string, so that callers can distinguish a domain from the dotted-quad
// rendering of an IPv4 address or from an opaque host that merely looks like
// one. The empty host is its own variant, distinct from an absent host.
//
// Parsing follows the standard exactly:
//   - "[" dispatches to the IPv6 parser, which supports "::" compression and
//     an embedded IPv4 tail.
//   - Opaque hosts (non-special schemes) are checked against the forbidden
//     code points and percent-encoded with the C0-control set.
//   - Everything else is percent-decoded, validated as UTF-8, run through
//     IDNA ToASCII, checked against the forbidden host code points, and
//     finally offered to the IPv4 parser, which understands decimal, octal,
//     and hexadecimal parts and fewer than four parts.
//
// Example Usage:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/hueristiq/hq-go-whatwg-url/host"
//	)
//
//	func main() {
//	    h, err := host.Parse("192.168.257", false, nil)
//	    if err != nil {
//	        fmt.Println("invalid host:", err)
//
//	        return
//	    }
//
//	    fmt.Println(h) // 192.168.1.1
//	}
//
// References:
// - WHATWG URL Standard, host parsing: https://url.spec.whatwg.org/#host-parsing
// - UTS #46, IDNA compatibility processing: https://www.unicode.org/reports/tr46/
package host
