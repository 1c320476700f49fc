// Package parser implements the basic URL parser of the WHATWG URL Standard:
// a state machine that consumes the input one code point at a time and emits
// a URL record, together with the canonical serializer and the re-entry
// points the component setters use.
//
// The Record type is the parser's output and the setters' input. It holds the
// scheme, credentials, typed host, port, path, query, and fragment exactly as
// the standard stores them: the scheme lowercase, the port elided when it
// equals the scheme's default, path segments percent-encoded, and an opaque
// single-element path for URLs that cannot be a base.
//
// Parsing is driven by ParseBasic, which accepts an optional base record, an
// optional seed record, and an optional state override. The plain Parse and
// ParseWithBase entry points cover the common cases; setters clone the
// current record, seed it, and re-enter the machine at a designated state.
//
// Two kinds of conditions are reported. Fatal failures return a typed error
// and no record. Validation errors - deviations the standard tolerates - are
// latched on the record and optionally delivered to a sink; a parser built
// with WithStrictValidation turns them into failures instead.
//
// Example Usage:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/hueristiq/hq-go-whatwg-url/parser"
//	)
//
//	func main() {
//	    p := parser.New()
//
//	    record, err := p.Parse("HTTP://EXAMPLE.com:80/Path?Q=1#F")
//	    if err != nil {
//	        fmt.Println("parse failed:", err)
//
//	        return
//	    }
//
//	    fmt.Println(record) // http://example.com/Path?Q=1#F
//	}
//
// References:
// - WHATWG URL Standard, URL parsing: https://url.spec.whatwg.org/#url-parsing
package parser
