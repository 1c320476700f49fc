package parser

// State identifies a state of the basic URL parser. Every state is exported;
// the ones the component setters use as override entry points say so below.
type State int

const (
	// NoState means no override: parsing starts at StateSchemeStart with a
	// fresh record.
	NoState State = iota

	// StateSchemeStart is the initial state and the protocol setter's entry
	// point.
	StateSchemeStart

	// StateScheme accumulates the scheme.
	StateScheme

	// StateNoScheme handles input without a scheme against the base URL.
	StateNoScheme

	// StateSpecialRelativeOrAuthority follows a special scheme that matches
	// the base's scheme.
	StateSpecialRelativeOrAuthority

	// StatePathOrAuthority follows "scheme:/" for non-special schemes.
	StatePathOrAuthority

	// StateRelative resolves relative input against the base URL.
	StateRelative

	// StateRelativeSlash handles a slash in relative context.
	StateRelativeSlash

	// StateSpecialAuthoritySlashes expects "//" after a special scheme.
	StateSpecialAuthoritySlashes

	// StateSpecialAuthorityIgnoreSlashes skips surplus slashes before the
	// authority.
	StateSpecialAuthorityIgnoreSlashes

	// StateAuthority accumulates userinfo or host.
	StateAuthority

	// StateHost accumulates the host and is the host setter's entry point.
	StateHost

	// StateHostname is StateHost entered by the hostname setter, which stops
	// before the port.
	StateHostname

	// StatePort accumulates the port and is the port setter's entry point.
	StatePort

	// StateFile bootstraps "file:" URLs.
	StateFile

	// StateFileSlash follows "file:/".
	StateFileSlash

	// StateFileHost accumulates a "file:" hostname.
	StateFileHost

	// StatePathStart precedes the first path segment and is the pathname
	// setter's entry point.
	StatePathStart

	// StatePath accumulates path segments.
	StatePath

	// StateCannotBeABaseURLPath accumulates the single opaque path.
	StateCannotBeABaseURLPath

	// StateQuery accumulates the query and is the search setter's entry
	// point.
	StateQuery

	// StateFragment accumulates the fragment and is the hash setter's entry
	// point.
	StateFragment
)
