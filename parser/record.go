package parser

import (
	"strconv"
	"strings"

	"github.com/hueristiq/hq-go-whatwg-url/host"
	"github.com/hueristiq/hq-go-whatwg-url/schemes"
	"github.com/hueristiq/hq-go-whatwg-url/unicodes"
)

// Record is a URL record: the structured output of the basic URL parser and
// the input of the component setters.
type Record struct {
	// Scheme is the lowercase scheme, never empty on a successful parse.
	Scheme string

	// Username and Password are the percent-encoded credentials. The record
	// includes credentials when at least one of them is non-empty.
	Username string
	Password string

	// Host is the typed host, nil when absent. The empty host is a present
	// host of the empty kind.
	Host *host.Host

	// Port is nil when absent. It is always absent when it would equal the
	// scheme's default port.
	Port *uint16

	// Path is the ordered list of percent-encoded path segments, or a single
	// opaque element when CannotBeABaseURL is set.
	Path []string

	// Query and Fragment are nil when absent; an empty non-nil value is
	// meaningful and serializes as a bare "?" or "#".
	Query    *string
	Fragment *string

	// CannotBeABaseURL marks URLs whose path is a single opaque string, such
	// as "mailto:user@example.com".
	CannotBeABaseURL bool

	// ValidationError is latched once the parser encounters any non-fatal
	// deviation from the recommended input shape. It is never cleared and
	// does not take part in equality.
	ValidationError bool
}

// IsSpecial reports whether the record's scheme is a special scheme.
//
// Returns:
//   - is (bool): true when the scheme is in the special-scheme table.
func (r *Record) IsSpecial() (is bool) {
	return schemes.IsSpecial(r.Scheme)
}

// IncludesCredentials reports whether the record carries a username or a
// password.
//
// Returns:
//   - includes (bool): true when either credential is non-empty.
func (r *Record) IncludesCredentials() (includes bool) {
	return r.Username != "" || r.Password != ""
}

// CannotHaveCredentialsOrPort reports whether the record is barred from
// carrying credentials and a port: its host is absent or empty, it cannot be
// a base URL, or its scheme is "file".
//
// Returns:
//   - cannot (bool): true when credentials and port are not allowed.
func (r *Record) CannotHaveCredentialsOrPort() (cannot bool) {
	return r.Host == nil || r.Host.IsEmpty() || r.CannotBeABaseURL || r.Scheme == "file"
}

// Clone returns a deep copy of the record.
//
// Returns:
//   - clone (*Record): An independent copy.
func (r *Record) Clone() (clone *Record) {
	clone = &Record{
		Scheme:           r.Scheme,
		Username:         r.Username,
		Password:         r.Password,
		CannotBeABaseURL: r.CannotBeABaseURL,
		ValidationError:  r.ValidationError,
	}

	if r.Host != nil {
		h := *r.Host
		clone.Host = &h
	}

	if r.Port != nil {
		p := *r.Port
		clone.Port = &p
	}

	if r.Path != nil {
		clone.Path = append([]string(nil), r.Path...)
	}

	if r.Query != nil {
		q := *r.Query
		clone.Query = &q
	}

	if r.Fragment != nil {
		f := *r.Fragment
		clone.Fragment = &f
	}

	return
}

// Equal reports whether two records hold the same URL, ignoring the
// validation-error latch.
//
// Parameters:
//   - other (*Record): The record to compare against.
//
// Returns:
//   - equal (bool): true when every component matches.
func (r *Record) Equal(other *Record) (equal bool) {
	if other == nil {
		return
	}

	if r.Scheme != other.Scheme || r.Username != other.Username || r.Password != other.Password {
		return
	}

	if (r.Host == nil) != (other.Host == nil) || (r.Host != nil && *r.Host != *other.Host) {
		return
	}

	if (r.Port == nil) != (other.Port == nil) || (r.Port != nil && *r.Port != *other.Port) {
		return
	}

	if len(r.Path) != len(other.Path) {
		return
	}

	for i := range r.Path {
		if r.Path[i] != other.Path[i] {
			return
		}
	}

	if (r.Query == nil) != (other.Query == nil) || (r.Query != nil && *r.Query != *other.Query) {
		return
	}

	if (r.Fragment == nil) != (other.Fragment == nil) || (r.Fragment != nil && *r.Fragment != *other.Fragment) {
		return
	}

	equal = r.CannotBeABaseURL == other.CannotBeABaseURL

	return
}

// String serializes the record to its canonical URL string.
//
// Returns:
//   - serialized (string): The canonical form, fragment included.
func (r *Record) String() (serialized string) {
	return r.serialize(false)
}

// SerializeExcludingFragment serializes the record with the fragment
// suppressed.
//
// Returns:
//   - serialized (string): The canonical form without "#fragment".
func (r *Record) SerializeExcludingFragment() (serialized string) {
	return r.serialize(true)
}

func (r *Record) serialize(excludeFragment bool) (serialized string) {
	var builder strings.Builder

	builder.WriteString(r.Scheme)
	builder.WriteString(":")

	switch {
	case r.Host != nil:
		builder.WriteString("//")

		if r.IncludesCredentials() {
			builder.WriteString(r.Username)

			if r.Password != "" {
				builder.WriteString(":")
				builder.WriteString(r.Password)
			}

			builder.WriteString("@")
		}

		builder.WriteString(r.Host.String())

		if r.Port != nil {
			builder.WriteString(":")
			builder.WriteString(strconv.FormatUint(uint64(*r.Port), 10))
		}
	case r.Scheme == "file":
		builder.WriteString("//")
	}

	if r.CannotBeABaseURL {
		if len(r.Path) > 0 {
			builder.WriteString(r.Path[0])
		}
	} else {
		for _, segment := range r.Path {
			builder.WriteString("/")
			builder.WriteString(segment)
		}
	}

	if r.Query != nil {
		builder.WriteString("?")
		builder.WriteString(*r.Query)
	}

	if !excludeFragment && r.Fragment != nil {
		builder.WriteString("#")
		builder.WriteString(*r.Fragment)
	}

	serialized = builder.String()

	return
}

// shortenPath removes the last path segment, keeping a lone "file:" drive
// letter in place.
func (r *Record) shortenPath() {
	if len(r.Path) == 0 {
		return
	}

	if r.Scheme == "file" && len(r.Path) == 1 && unicodes.IsNormalizedWindowsDriveLetter(r.Path[0]) {
		return
	}

	r.Path = r.Path[:len(r.Path)-1]
}

// cleanDefaultPort clears the port when it equals the scheme's default.
func (r *Record) cleanDefaultPort() {
	if r.Port == nil {
		return
	}

	if defaultPort, ok := schemes.DefaultPort(r.Scheme); ok && defaultPort == *r.Port {
		r.Port = nil
	}
}
