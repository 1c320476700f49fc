package url

import (
	"strconv"
	"strings"

	hqgoerrors "github.com/hueristiq/hq-go-errors"
	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/hueristiq/hq-go-whatwg-url/parser"
	"github.com/hueristiq/hq-go-whatwg-url/percentencoding"
	"github.com/hueristiq/hq-go-whatwg-url/schemes"
)

// URL is a parsed WHATWG URL. It wraps the URL record produced by the basic
// URL parser and exposes the component accessors and setters of the
// standard. Setters re-run the parsing algorithms and leave the URL
// untouched on failure.
type URL struct {
	record *parser.Record

	p *parser.Parser
}

// Href returns the full canonical serialization of the URL.
//
// Returns:
//   - href (string): The serialized URL, fragment included.
func (u *URL) Href() (href string) {
	return u.record.String()
}

// HrefExcludingFragment returns the canonical serialization with the
// fragment suppressed.
//
// Returns:
//   - href (string): The serialized URL without "#fragment".
func (u *URL) HrefExcludingFragment() (href string) {
	return u.record.SerializeExcludingFragment()
}

// String implements fmt.Stringer as an alias of Href.
//
// Returns:
//   - s (string): The serialized URL.
func (u *URL) String() (s string) {
	return u.Href()
}

// Record returns a copy of the underlying URL record.
//
// Returns:
//   - record (*parser.Record): An independent copy of the record.
func (u *URL) Record() (record *parser.Record) {
	return u.record.Clone()
}

// Protocol returns the scheme followed by ":".
//
// Returns:
//   - protocol (string): For example "https:".
func (u *URL) Protocol() (protocol string) {
	return u.record.Scheme + ":"
}

// Username returns the percent-encoded username.
//
// Returns:
//   - username (string): The username, possibly empty.
func (u *URL) Username() (username string) {
	return u.record.Username
}

// Password returns the percent-encoded password.
//
// Returns:
//   - password (string): The password, possibly empty.
func (u *URL) Password() (password string) {
	return u.record.Password
}

// Host returns the hostname followed by ":port" when a port is present.
//
// Returns:
//   - h (string): The host and optional port, empty when the host is absent.
func (u *URL) Host() (h string) {
	if u.record.Host == nil {
		return
	}

	h = u.record.Host.String()

	if u.record.Port != nil {
		h += ":" + strconv.FormatUint(uint64(*u.record.Port), 10)
	}

	return
}

// Hostname returns the serialized host without the port.
//
// Returns:
//   - hostname (string): The host, empty when absent.
func (u *URL) Hostname() (hostname string) {
	if u.record.Host == nil {
		return
	}

	hostname = u.record.Host.String()

	return
}

// Port returns the port in decimal form, or the empty string when the port
// is absent.
//
// Returns:
//   - port (string): The port digits, possibly empty.
func (u *URL) Port() (port string) {
	if u.record.Port == nil {
		return
	}

	port = strconv.FormatUint(uint64(*u.record.Port), 10)

	return
}

// Pathname returns the serialized path: the opaque path for URLs that
// cannot be a base, otherwise every segment prefixed with "/".
//
// Returns:
//   - pathname (string): The serialized path.
func (u *URL) Pathname() (pathname string) {
	if u.record.CannotBeABaseURL {
		if len(u.record.Path) > 0 {
			pathname = u.record.Path[0]
		}

		return
	}

	for _, segment := range u.record.Path {
		pathname += "/" + segment
	}

	return
}

// Search returns "?" followed by the query, or the empty string when the
// query is absent or empty.
//
// Returns:
//   - search (string): The serialized query.
func (u *URL) Search() (search string) {
	if u.record.Query == nil || *u.record.Query == "" {
		return
	}

	search = "?" + *u.record.Query

	return
}

// Hash returns "#" followed by the fragment, or the empty string when the
// fragment is absent or empty.
//
// Returns:
//   - hash (string): The serialized fragment.
func (u *URL) Hash() (hash string) {
	if u.record.Fragment == nil || *u.record.Fragment == "" {
		return
	}

	hash = "#" + *u.record.Fragment

	return
}

// Origin returns the serialized origin of the URL. "blob:" URLs recurse into
// their payload URL, the special network schemes serialize as
// "scheme://host[:port]", "file:" URLs have the empty origin, and every
// other scheme is opaque and serializes as "null".
//
// Returns:
//   - origin (string): The serialized origin.
func (u *URL) Origin() (origin string) {
	switch u.record.Scheme {
	case "blob":
		payload, err := u.p.Parse(u.Pathname())
		if err != nil {
			return
		}

		origin = (&URL{record: payload, p: u.p}).Origin()
	case "ftp", "http", "https", "ws", "wss":
		origin = u.record.Scheme + "://" + u.Host()
	case "file":
		origin = ""
	default:
		origin = "null"
	}

	return
}

// HasValidationError reports whether the parser latched a non-fatal
// validation error while producing or mutating this URL.
//
// Returns:
//   - latched (bool): true when any validation error was encountered.
func (u *URL) HasValidationError() (latched bool) {
	return u.record.ValidationError
}

// SetHref replaces the whole URL by parsing the given absolute URL string.
//
// Parameters:
//   - value (string): The replacement URL text.
//
// Returns:
//   - err (error): A typed parse error; the URL is unchanged when set.
func (u *URL) SetHref(value string) (err error) {
	record, err := u.p.Parse(value)
	if err != nil {
		return
	}

	u.record = record

	return
}

// SetProtocol replaces the scheme, re-entering the parser at the scheme
// start state. A trailing ":" in the input is optional. Changes that switch
// between special and non-special schemes are rejected, as are the "file"
// transitions the standard forbids.
//
// Parameters:
//   - value (string): The new scheme, with or without a trailing ":".
//
// Returns:
//   - err (error): A typed error; the URL is unchanged when set.
func (u *URL) SetProtocol(value string) (err error) {
	if !strings.HasSuffix(value, ":") {
		value += ":"
	}

	clone := u.record.Clone()

	if _, err = u.p.ParseBasic(value, nil, clone, parser.StateSchemeStart); err != nil {
		return
	}

	u.record = clone

	return
}

// SetUsername replaces the username, percent-encoding it with the userinfo
// encode set.
//
// Parameters:
//   - value (string): The new username, unencoded.
//
// Returns:
//   - err (error): errors.CannotHaveCredentialsOrPort when the URL cannot
//     carry credentials.
func (u *URL) SetUsername(value string) (err error) {
	if u.record.CannotHaveCredentialsOrPort() {
		err = errors.New(errors.CannotHaveCredentialsOrPort)

		return
	}

	u.record.Username = encodeUserInfo(value)

	return
}

// SetPassword replaces the password, percent-encoding it with the userinfo
// encode set.
//
// Parameters:
//   - value (string): The new password, unencoded.
//
// Returns:
//   - err (error): errors.CannotHaveCredentialsOrPort when the URL cannot
//     carry credentials.
func (u *URL) SetPassword(value string) (err error) {
	if u.record.CannotHaveCredentialsOrPort() {
		err = errors.New(errors.CannotHaveCredentialsOrPort)

		return
	}

	u.record.Password = encodeUserInfo(value)

	return
}

// SetHost replaces the host and, when the input carries one, the port. When
// parsing fails on the port the host alone is retried, matching the
// standard's forgiving host setter.
//
// Parameters:
//   - value (string): The new host, optionally followed by ":port".
//
// Returns:
//   - err (error): A typed error; the URL is unchanged when set.
func (u *URL) SetHost(value string) (err error) {
	if u.record.CannotBeABaseURL {
		err = errors.New(errors.CannotBeABaseURL)

		return
	}

	clone := u.record.Clone()

	if _, err = u.p.ParseBasic(value, nil, clone, parser.StateHost); err != nil {
		if errors.CodeOf(err) != errors.InvalidPort {
			return
		}

		clone = u.record.Clone()

		if _, err = u.p.ParseBasic(value, nil, clone, parser.StateHostname); err != nil {
			return
		}
	}

	u.record = clone

	return
}

// SetHostname replaces the host without touching the port.
//
// Parameters:
//   - value (string): The new host, without a port.
//
// Returns:
//   - err (error): A typed error; the URL is unchanged when set.
func (u *URL) SetHostname(value string) (err error) {
	if u.record.CannotBeABaseURL {
		err = errors.New(errors.CannotBeABaseURL)

		return
	}

	clone := u.record.Clone()

	if _, err = u.p.ParseBasic(value, nil, clone, parser.StateHostname); err != nil {
		return
	}

	u.record = clone

	return
}

// SetPort replaces the port. An empty input clears it; a port equal to the
// scheme's default is stored as absent.
//
// Parameters:
//   - value (string): The new port digits, or "" to clear.
//
// Returns:
//   - err (error): A typed error; the URL is unchanged when set.
func (u *URL) SetPort(value string) (err error) {
	if u.record.CannotHaveCredentialsOrPort() {
		err = errors.New(errors.CannotHaveCredentialsOrPort)

		return
	}

	if value == "" {
		u.record.Port = nil

		return
	}

	clone := u.record.Clone()

	if _, err = u.p.ParseBasic(value, nil, clone, parser.StatePort); err != nil {
		return
	}

	u.record = clone

	return
}

// SetPathname replaces the path, re-entering the parser at the path start
// state.
//
// Parameters:
//   - value (string): The new path text.
//
// Returns:
//   - err (error): A typed error; the URL is unchanged when set.
func (u *URL) SetPathname(value string) (err error) {
	if u.record.CannotBeABaseURL {
		err = errors.New(errors.CannotBeABaseURL)

		return
	}

	clone := u.record.Clone()
	clone.Path = nil

	if _, err = u.p.ParseBasic(value, nil, clone, parser.StatePathStart); err != nil {
		return
	}

	u.record = clone

	return
}

// SetSearch replaces the query. An empty input clears it; a leading "?" is
// dropped.
//
// Parameters:
//   - value (string): The new query text, with or without a leading "?".
//
// Returns:
//   - err (error): A typed error; the URL is unchanged when set.
func (u *URL) SetSearch(value string) (err error) {
	if value == "" {
		u.record.Query = nil

		return
	}

	value = strings.TrimPrefix(value, "?")

	clone := u.record.Clone()

	query := ""
	clone.Query = &query

	if _, err = u.p.ParseBasic(value, nil, clone, parser.StateQuery); err != nil {
		return
	}

	u.record = clone

	return
}

// SetHash replaces the fragment. An empty input clears it; a leading "#" is
// dropped.
//
// Parameters:
//   - value (string): The new fragment text, with or without a leading "#".
//
// Returns:
//   - err (error): A typed error; the URL is unchanged when set.
func (u *URL) SetHash(value string) (err error) {
	if value == "" {
		u.record.Fragment = nil

		return
	}

	value = strings.TrimPrefix(value, "#")

	clone := u.record.Clone()

	fragment := ""
	clone.Fragment = &fragment

	if _, err = u.p.ParseBasic(value, nil, clone, parser.StateFragment); err != nil {
		return
	}

	u.record = clone

	return
}

// Parser parses raw URL strings into URL values. It wraps the basic URL
// parser of the parser subpackage and carries its configuration.
type Parser struct {
	internal *parser.Parser

	internalOptions []parser.OptionFunc
}

// Parse parses an absolute URL string.
//
// Parameters:
//   - rawURL (string): The URL text in UTF-8.
//
// Returns:
//   - parsed (*URL): The parsed URL.
//   - err (error): An error wrapping the typed parse failure.
func (up *Parser) Parse(rawURL string) (parsed *URL, err error) {
	record, err := up.internal.Parse(rawURL)
	if err != nil {
		err = hqgoerrors.Wrap(err, "failed to parse URL")

		return
	}

	parsed = &URL{record: record, p: up.internal}

	return
}

// ParseRef parses a reference against a base URL string, resolving relative
// references the way browsers do.
//
// Parameters:
//   - baseURL (string): The absolute base URL text.
//   - ref (string): The reference, absolute or relative.
//
// Returns:
//   - parsed (*URL): The resolved URL.
//   - err (error): An error wrapping the typed parse failure.
func (up *Parser) ParseRef(baseURL, ref string) (parsed *URL, err error) {
	base, err := up.internal.Parse(baseURL)
	if err != nil {
		err = hqgoerrors.Wrap(err, "failed to parse base URL")

		return
	}

	record, err := up.internal.ParseWithBase(ref, base)
	if err != nil {
		err = hqgoerrors.Wrap(err, "failed to parse URL reference")

		return
	}

	parsed = &URL{record: record, p: up.internal}

	return
}

// OptionFunc configures a Parser instance.
type OptionFunc func(parser *Parser)

// Interface is the contract of the URL parser façade.
type Interface interface {
	Parse(rawURL string) (parsed *URL, err error)
	ParseRef(baseURL, ref string) (parsed *URL, err error)
}

// Ensure that Parser implements the Interface.
var _ Interface = (*Parser)(nil)

// NewParser creates a Parser and applies the given options.
//
// Parameters:
//   - options (...OptionFunc): Configuration options.
//
// Returns:
//   - up (*Parser): The configured parser.
func NewParser(options ...OptionFunc) (up *Parser) {
	up = &Parser{}

	for _, option := range options {
		option(up)
	}

	up.internal = parser.New(up.internalOptions...)

	return
}

// ParserWithStrictValidation returns an option that makes the parser treat
// validation errors as failures instead of latching them.
//
// Returns:
//   - option (OptionFunc): The option to pass to NewParser.
func ParserWithStrictValidation() (option OptionFunc) {
	return func(up *Parser) {
		up.internalOptions = append(up.internalOptions, parser.WithStrictValidation())
	}
}

// ParserWithValidationErrorSink returns an option that delivers every
// validation error to the given sink as it is encountered.
//
// Parameters:
//   - sink (func(errors.Code)): The receiver for validation errors.
//
// Returns:
//   - option (OptionFunc): The option to pass to NewParser.
func ParserWithValidationErrorSink(sink func(code errors.Code)) (option OptionFunc) {
	return func(up *Parser) {
		up.internalOptions = append(up.internalOptions, parser.WithValidationErrorSink(sink))
	}
}

// defaultParser backs the package-level Parse and ParseRef.
var defaultParser = NewParser()

// Parse parses an absolute URL string with the default parser.
//
// Parameters:
//   - rawURL (string): The URL text in UTF-8.
//
// Returns:
//   - parsed (*URL): The parsed URL.
//   - err (error): An error wrapping the typed parse failure.
func Parse(rawURL string) (parsed *URL, err error) {
	return defaultParser.Parse(rawURL)
}

// ParseRef parses a reference against a base URL string with the default
// parser.
//
// Parameters:
//   - baseURL (string): The absolute base URL text.
//   - ref (string): The reference, absolute or relative.
//
// Returns:
//   - parsed (*URL): The resolved URL.
//   - err (error): An error wrapping the typed parse failure.
func ParseRef(baseURL, ref string) (parsed *URL, err error) {
	return defaultParser.ParseRef(baseURL, ref)
}

// DefaultPort returns the default port of a scheme per the special-scheme
// table. A trailing ":" is tolerated.
//
// Parameters:
//   - scheme (string): The scheme to look up.
//
// Returns:
//   - port (uint16): The default port, meaningful only when ok is true.
//   - ok (bool): true when the scheme has a default port.
func DefaultPort(scheme string) (port uint16, ok bool) {
	return schemes.DefaultPort(scheme)
}

// encodeUserInfo percent-encodes a credential with the userinfo encode set.
func encodeUserInfo(value string) (encoded string) {
	var builder strings.Builder

	for _, r := range value {
		builder.WriteString(percentencoding.EncodeRune(r, percentencoding.UserInfo))
	}

	encoded = builder.String()

	return
}
