// Package schemes provides the fixed table of special URL schemes defined by
// the WHATWG URL Standard, together with their default ports.
//
// A scheme is "special" when it appears in this table. Special schemes switch
// the URL parser into authority-bearing modes, tolerate "\" as a slash, and
// have their default port elided from parsed URL records. The table is fixed
// by the standard; there is no registration mechanism.
//
// Contents:
//   - IsSpecial: membership test against the special-scheme table.
//   - DefaultPort: scheme to default-port lookup, tolerating a trailing ":".
//
// Example Usage:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/hueristiq/hq-go-whatwg-url/schemes"
//	)
//
//	func main() {
//	    if port, ok := schemes.DefaultPort("https"); ok {
//	        fmt.Println("default port:", port)
//	    }
//	}
//
// References:
// - WHATWG URL Standard, special schemes: https://url.spec.whatwg.org/#special-scheme
package schemes
