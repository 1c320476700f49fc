package errors

import (
	stderrors "errors"
)

// Code identifies a single kind of condition the URL parsing pipeline can
// report. Fatal codes short-circuit parsing; validation codes are latched on
// the record and reported through the configured sink while parsing continues.
type Code int

// Fatal parse failure codes. A parser returning one of these has not produced
// a URL record.
const (
	// Unknown is the zero Code. It is never produced by the pipeline and is
	// returned by CodeOf when no Code can be extracted from an error chain.
	Unknown Code = iota

	// InvalidSchemeCharacter indicates a scheme that does not start with an
	// ASCII alpha, or contains a code point outside ASCII alphanumerics and
	// "+", "-", ".", while a state override was in effect.
	InvalidSchemeCharacter

	// NotAnAbsoluteURLWithFragment indicates a relative URL that could not be
	// resolved: there is no base URL, or the base URL cannot be a base and the
	// input is not a lone fragment.
	NotAnAbsoluteURLWithFragment

	// EmptyHostname indicates a missing host in a position where the scheme
	// requires one, for example "http://" or credentials followed by no host.
	EmptyHostname

	// InvalidIPv6Address indicates a bracketed host that could not be parsed
	// as an IPv6 address.
	InvalidIPv6Address

	// InvalidIPv4Address indicates a host that ends in a number whose value
	// overflows the IPv4 address space.
	InvalidIPv4Address

	// ForbiddenHostCodePoint indicates an opaque host containing a code point
	// that is never allowed inside a host.
	ForbiddenHostCodePoint

	// CannotDecodeHostCodePoint indicates percent-decoded host bytes that do
	// not form valid UTF-8.
	CannotDecodeHostCodePoint

	// DomainError indicates a domain that failed IDNA ToASCII conversion, was
	// empty after conversion, or contains a forbidden code point.
	DomainError

	// InvalidPort indicates a port that is not a decimal number or does not
	// fit in 16 bits.
	InvalidPort

	// CannotOverrideScheme indicates a scheme setter that attempted a change
	// the standard forbids, such as switching between special and non-special
	// schemes.
	CannotOverrideScheme

	// CannotBeABaseURL indicates a component setter invoked on a URL whose
	// path is opaque, for example "mailto:user@example.com".
	CannotBeABaseURL

	// CannotHaveCredentialsOrPort indicates a credentials or port setter
	// invoked on a URL that cannot carry them: no host, an empty host, or the
	// "file" scheme.
	CannotHaveCredentialsOrPort

	// InvalidUnicodeCharacter indicates input that is not a valid Unicode
	// sequence, such as an unpaired surrogate or malformed UTF-8.
	InvalidUnicodeCharacter
)

// IPv6 parser failure codes. They surface wrapped in InvalidIPv6Address.
const (
	// IPv6InvalidPiece indicates a piece that is not 1-4 hex digits, or more
	// than eight pieces.
	IPv6InvalidPiece Code = iota + 100

	// IPv6CompressExpected indicates an address with fewer than eight pieces
	// and no "::" compression, or a second "::".
	IPv6CompressExpected

	// IPv6DoesNotStartWithDoubleColon indicates an address starting with a
	// single ":".
	IPv6DoesNotStartWithDoubleColon

	// IPv6EmptyIPv4Segment indicates a "." directly after a ":" where an
	// embedded IPv4 tail was expected.
	IPv6EmptyIPv4Segment

	// IPv6InvalidIPv4SegmentNumber indicates an embedded IPv4 tail whose
	// segment is empty, has a leading zero, exceeds 255, or whose tail does
	// not have exactly four segments.
	IPv6InvalidIPv4SegmentNumber
)

// IPv4 parser failure codes. They surface wrapped in InvalidIPv4Address.
const (
	// IPv4Overflow indicates a dotted-numeric host whose value does not fit
	// the IPv4 address space.
	IPv4Overflow Code = iota + 200
)

// Validation error codes. These never terminate a lenient parse; the parser
// latches the record's validation flag and keeps going.
const (
	// IllegalWhitespace indicates leading or trailing C0 controls or spaces
	// that were stripped from the input.
	IllegalWhitespace Code = iota + 300

	// IllegalTabOrNewline indicates tabs, line feeds, or carriage returns
	// that were removed from the interior of the input.
	IllegalTabOrNewline

	// IllegalSlashes indicates missing, surplus, or backslashed slashes
	// around an authority.
	IllegalSlashes

	// AtInAuthority indicates an "@" inside the authority component.
	AtInAuthority

	// IllegalCodePoint indicates a code point that is not a URL code point in
	// a path, query, or fragment.
	IllegalCodePoint

	// InvalidPercentEncoding indicates a "%" that is not followed by two
	// ASCII hex digits.
	InvalidPercentEncoding

	// BadWindowsDriveLetter indicates a Windows drive letter in a position
	// the standard flags, such as a "file:" host.
	BadWindowsDriveLetter

	// IllegalLocalFileAndHostCombo indicates a "file:" URL combining a
	// non-empty host with a drive-letter path.
	IllegalLocalFileAndHostCombo

	// IPv4NumberOutOfRange indicates a dotted-numeric part above 255, or a
	// trailing empty part that was dropped.
	IPv4NumberOutOfRange
)

// messages maps each Code to its human-readable description.
var messages = map[Code]string{
	Unknown:                         "unknown error",
	InvalidSchemeCharacter:          "invalid scheme character",
	NotAnAbsoluteURLWithFragment:    "not an absolute URL and no usable base",
	EmptyHostname:                   "empty hostname",
	InvalidIPv6Address:              "invalid IPv6 address",
	InvalidIPv4Address:              "invalid IPv4 address",
	ForbiddenHostCodePoint:          "forbidden host code point",
	CannotDecodeHostCodePoint:       "host is not valid UTF-8 after percent decoding",
	DomainError:                     "invalid domain",
	InvalidPort:                     "invalid port",
	CannotOverrideScheme:            "scheme cannot be overridden",
	CannotBeABaseURL:                "URL cannot be a base URL",
	CannotHaveCredentialsOrPort:     "URL cannot have credentials or a port",
	InvalidUnicodeCharacter:         "invalid unicode character",
	IPv6InvalidPiece:                "invalid IPv6 piece",
	IPv6CompressExpected:            "IPv6 address has too few pieces and no compression",
	IPv6DoesNotStartWithDoubleColon: "IPv6 address starts with a single colon",
	IPv6EmptyIPv4Segment:            "empty IPv4 segment in IPv6 address",
	IPv6InvalidIPv4SegmentNumber:    "invalid IPv4 segment number in IPv6 address",
	IPv4Overflow:                    "IPv4 address out of range",
	IllegalWhitespace:               "leading or trailing whitespace",
	IllegalTabOrNewline:             "tab or newline inside URL",
	IllegalSlashes:                  "unexpected slashes",
	AtInAuthority:                   "'@' inside authority",
	IllegalCodePoint:                "code point is not a URL code point",
	InvalidPercentEncoding:          "'%' is not followed by two hex digits",
	BadWindowsDriveLetter:           "unexpected Windows drive letter",
	IllegalLocalFileAndHostCombo:    "file URL cannot combine host and drive letter",
	IPv4NumberOutOfRange:            "IPv4 part out of range",
}

// Message returns the human-readable description of the Code.
//
// Returns:
//   - message (string): The description, or the Unknown description for
//     unrecognized codes.
func (c Code) Message() (message string) {
	message, ok := messages[c]
	if !ok {
		message = messages[Unknown]
	}

	return
}

// IsValidation reports whether the Code belongs to the validation-error
// family, i.e. conditions a lenient parser survives.
//
// Returns:
//   - is (bool): true for validation codes, false for fatal codes.
func (c Code) IsValidation() (is bool) {
	return c >= IllegalWhitespace
}

// Error is the error value produced throughout the parsing pipeline. It pairs
// a Code with an optional underlying cause.
type Error struct {
	code  Code
	cause error
}

// New creates an Error carrying the given Code.
//
// Parameters:
//   - code (Code): The kind of failure.
//
// Returns:
//   - err (*Error): The constructed error.
func New(code Code) (err *Error) {
	return &Error{code: code}
}

// Wrap creates an Error carrying the given Code on top of an underlying
// cause. The cause remains reachable through Unwrap.
//
// Parameters:
//   - code (Code): The kind of failure.
//   - cause (error): The underlying error, may be nil.
//
// Returns:
//   - err (*Error): The constructed error.
func Wrap(code Code, cause error) (err *Error) {
	return &Error{code: code, cause: cause}
}

// Error implements the error interface.
//
// Returns:
//   - message (string): The code description, followed by the cause when one
//     is present.
func (e *Error) Error() (message string) {
	message = e.code.Message()

	if e.cause != nil {
		message += ": " + e.cause.Error()
	}

	return
}

// Code returns the Code the error carries.
//
// Returns:
//   - code (Code): The kind of failure.
func (e *Error) Code() (code Code) {
	return e.code
}

// Unwrap exposes the underlying cause to the standard errors package.
//
// Returns:
//   - cause (error): The wrapped error, or nil.
func (e *Error) Unwrap() (cause error) {
	return e.cause
}

// Is reports whether target is an *Error with the same Code, which makes
// errors.Is usable for code comparison.
//
// Parameters:
//   - target (error): The error to compare against.
//
// Returns:
//   - is (bool): true when target carries the same Code.
func (e *Error) Is(target error) (is bool) {
	var t *Error

	if stderrors.As(target, &t) {
		is = t.code == e.code
	}

	return
}

// CodeOf extracts the first Code found in an error chain. It unwraps through
// any error that implements the standard Unwrap contract, so codes survive
// wrapping by context-adding libraries.
//
// Parameters:
//   - err (error): The error chain to inspect, may be nil.
//
// Returns:
//   - code (Code): The extracted Code, or Unknown.
func CodeOf(err error) (code Code) {
	var e *Error

	if stderrors.As(err, &e) {
		code = e.code
	}

	return
}
