// Package url implements the WHATWG URL Standard: parsing, serialization,
// and mutation of URLs with the exact semantics browsers use, including the
// quirks around "file:" URLs, special schemes, IPv4 shorthand, IPv6 bracket
// syntax, IDNA domain encoding, and percent-encoding sets.
//
// The URL type is the public surface. It is produced by Parse or ParseRef,
// exposes every component through accessors (Href, Protocol, Username,
// Password, Host, Hostname, Port, Pathname, Search, Hash, Origin), and is
// mutated through setters that re-run the standard's parsing algorithms, so
// a mutated URL is always in canonical form. A setter that fails leaves the
// URL untouched.
//
// The heavy lifting lives in the subpackages: parser holds the basic URL
// parser state machine and the URL record, host the host parser,
// percentencoding the encode sets, schemes the special-scheme table, and
// unicodes the code-point classes and wide-string adapters. This package
// wires them together behind the object interface.
//
// Example Usage:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    hqgowhatwgurl "github.com/hueristiq/hq-go-whatwg-url"
//	)
//
//	func main() {
//	    u, err := hqgowhatwgurl.Parse("HTTP://EXAMPLE.com:80/Path?Q=1#F")
//	    if err != nil {
//	        fmt.Println("parse failed:", err)
//
//	        return
//	    }
//
//	    fmt.Println(u.Href())     // http://example.com/Path?Q=1#F
//	    fmt.Println(u.Hostname()) // example.com
//
//	    if err := u.SetProtocol("https"); err == nil {
//	        fmt.Println(u.Href()) // https://example.com/Path?Q=1#F
//	    }
//	}
//
// References:
// - WHATWG URL Standard: https://url.spec.whatwg.org/
package url
