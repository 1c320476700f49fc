// Package errors provides the typed error taxonomy shared by the URL parsing
// pipeline: the basic URL parser, the host parser, and the component setters.
//
// Every failure the pipeline can produce is identified by a Code. Codes cover
// two families:
//   - Fatal parse failures, after which no URL record can be produced
//     (e.g. EmptyHostname, InvalidPort, InvalidIPv6Address).
//   - Validation errors, non-fatal deviations from the recommended input shape
//     that the parser reports through a sink and latches on the record while
//     continuing (e.g. IllegalSlashes, IllegalTabOrNewline).
//
// The Error type carries a Code together with an optional underlying cause,
// implements the standard Unwrap contract, and supports comparison through
// errors.Is by code. CodeOf walks a wrap chain - including chains built with
// third-party wrapping libraries - and extracts the first Code it finds, so
// callers can switch on failure kinds without depending on message text.
//
// Example Usage:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/hueristiq/hq-go-whatwg-url/errors"
//	)
//
//	func main() {
//	    err := errors.New(errors.InvalidPort)
//
//	    if errors.CodeOf(err) == errors.InvalidPort {
//	        fmt.Println("the port is out of range or not a number")
//	    }
//	}
//
// References:
// - WHATWG URL Standard error handling: https://url.spec.whatwg.org/#writing
package errors
