package parser

import (
	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/hueristiq/hq-go-whatwg-url/unicodes"
)

// Parser runs the basic URL parser. The zero value is a lenient parser; use
// New with options to configure validation-error handling.
type Parser struct {
	strict bool

	sink func(code errors.Code)
}

// Parse runs the basic URL parser over the input with no base URL.
//
// Parameters:
//   - rawURL (string): The URL text in UTF-8.
//
// Returns:
//   - record (*Record): The parsed URL record.
//   - err (error): A typed error from the errors package on failure.
func (p *Parser) Parse(rawURL string) (record *Record, err error) {
	return p.ParseBasic(rawURL, nil, nil, NoState)
}

// ParseWithBase runs the basic URL parser over the input, resolving relative
// input against the base record.
//
// Parameters:
//   - rawURL (string): The URL text in UTF-8, absolute or relative.
//   - base (*Record): The base URL record, may be nil.
//
// Returns:
//   - record (*Record): The parsed URL record.
//   - err (error): A typed error from the errors package on failure.
func (p *Parser) ParseWithBase(rawURL string, base *Record) (record *Record, err error) {
	return p.ParseBasic(rawURL, base, nil, NoState)
}

// ParseBasic is the full entry point of the basic URL parser. It accepts an
// optional base record, an optional seed record that the machine mutates in
// place, and an optional state override selecting the entry state. Setters
// use the seed and override together to re-parse a single component.
//
// Parameters:
//   - rawURL (string): The input text in UTF-8.
//   - base (*Record): The base URL record, may be nil.
//   - seed (*Record): The record to mutate, or nil for a fresh one.
//   - override (State): The entry state, or NoState for a full parse.
//
// Returns:
//   - record (*Record): The resulting record; the seed when one was given.
//   - err (error): A typed error from the errors package on failure.
func (p *Parser) ParseBasic(rawURL string, base, seed *Record, override State) (record *Record, err error) {
	record = seed
	if record == nil {
		record = &Record{}
	}

	if override == NoState {
		if trimmed, changed := unicodes.Trim(rawURL, unicodes.C0ControlOrSpace); changed {
			if err = p.handleError(record, errors.IllegalWhitespace); err != nil {
				record = nil

				return
			}

			rawURL = trimmed
		}

		if removed, changed := unicodes.Remove(rawURL, unicodes.ASCIITabOrNewline); changed {
			if err = p.handleError(record, errors.IllegalTabOrNewline); err != nil {
				record = nil

				return
			}

			rawURL = removed
		}
	}

	if err = p.run(rawURL, base, record, override); err != nil {
		record = nil
	}

	return
}

// handleError latches and reports a validation error. In strict mode it
// escalates the error to a failure.
func (p *Parser) handleError(record *Record, code errors.Code) (err error) {
	record.ValidationError = true

	if p.sink != nil {
		p.sink(code)
	}

	if p.strict {
		err = errors.New(code)
	}

	return
}

// OptionFunc configures a Parser instance.
type OptionFunc func(parser *Parser)

// Interface is the contract of the basic URL parser.
type Interface interface {
	Parse(rawURL string) (record *Record, err error)
	ParseWithBase(rawURL string, base *Record) (record *Record, err error)
	ParseBasic(rawURL string, base, seed *Record, override State) (record *Record, err error)
}

// Ensure that Parser implements the Interface.
var _ Interface = (*Parser)(nil)

// New creates a Parser and applies the given options.
//
// Parameters:
//   - options (...OptionFunc): Configuration options.
//
// Returns:
//   - parser (*Parser): The configured parser.
func New(options ...OptionFunc) (parser *Parser) {
	parser = &Parser{}

	for _, option := range options {
		option(parser)
	}

	return
}

// WithStrictValidation returns an option that makes the parser fail on the
// validation errors a lenient parse merely latches.
//
// Returns:
//   - option (OptionFunc): The option to pass to New.
func WithStrictValidation() (option OptionFunc) {
	return func(parser *Parser) {
		parser.strict = true
	}
}

// WithValidationErrorSink returns an option that delivers every validation
// error to the given sink as it is encountered, independent of strictness.
//
// Parameters:
//   - sink (func(errors.Code)): The receiver for validation errors.
//
// Returns:
//   - option (OptionFunc): The option to pass to New.
func WithValidationErrorSink(sink func(code errors.Code)) (option OptionFunc) {
	return func(parser *Parser) {
		parser.sink = sink
	}
}
