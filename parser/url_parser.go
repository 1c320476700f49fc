package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/hueristiq/hq-go-whatwg-url/host"
	"github.com/hueristiq/hq-go-whatwg-url/percentencoding"
	"github.com/hueristiq/hq-go-whatwg-url/schemes"
	"github.com/hueristiq/hq-go-whatwg-url/unicodes"
)

// run drives the state machine over the preprocessed input, mutating url in
// place. A nil return in override mode means the override state completed;
// otherwise the machine ran to EOF.
func (p *Parser) run(rawURL string, base, url *Record, override State) (err error) {
	in := newInput(rawURL)

	overridden := override != NoState

	state := StateSchemeStart
	if overridden {
		state = override
	}

	var buffer strings.Builder

	atFlag := false
	squareBracketFlag := false
	passwordTokenSeenFlag := false

	for {
		r := in.next()

		switch state {
		case StateSchemeStart:
			switch {
			case unicodes.ASCIIAlpha.Test(uint(r)):
				buffer.WriteRune(unicode.ToLower(r))

				state = StateScheme
			case !overridden:
				state = StateNoScheme

				in.rewindLast()
			default:
				err = errors.New(errors.InvalidSchemeCharacter)

				return
			}
		case StateScheme:
			switch {
			case unicodes.SchemeCodePoint.Test(uint(r)):
				buffer.WriteRune(unicode.ToLower(r))
			case r == ':' && !in.eof:
				if overridden {
					candidate := buffer.String()

					if schemes.IsSpecial(url.Scheme) != schemes.IsSpecial(candidate) {
						err = errors.New(errors.CannotOverrideScheme)

						return
					}

					if candidate == "file" && (url.IncludesCredentials() || url.Port != nil) {
						err = errors.New(errors.CannotOverrideScheme)

						return
					}

					if url.Scheme == "file" && (url.Host == nil || url.Host.IsEmpty()) {
						err = errors.New(errors.CannotOverrideScheme)

						return
					}
				}

				url.Scheme = buffer.String()

				if overridden {
					url.cleanDefaultPort()

					return
				}

				buffer.Reset()

				switch {
				case url.Scheme == "file":
					if !in.remainingStartsWith("//") {
						if err = p.handleError(url, errors.IllegalSlashes); err != nil {
							return
						}
					}

					state = StateFile
				case url.IsSpecial() && base != nil && base.Scheme == url.Scheme:
					state = StateSpecialRelativeOrAuthority
				case url.IsSpecial():
					state = StateSpecialAuthoritySlashes
				case in.remainingStartsWith("/"):
					state = StatePathOrAuthority

					in.next()
				default:
					url.CannotBeABaseURL = true
					url.Path = append(url.Path, "")

					state = StateCannotBeABaseURLPath
				}
			case !overridden:
				buffer.Reset()

				state = StateNoScheme

				in.reset()
			default:
				err = errors.New(errors.InvalidSchemeCharacter)

				return
			}
		case StateNoScheme:
			switch {
			case base == nil || (base.CannotBeABaseURL && r != '#'):
				err = errors.New(errors.NotAnAbsoluteURLWithFragment)

				return
			case base.CannotBeABaseURL && r == '#':
				url.Scheme = base.Scheme
				url.Path = clonePath(base.Path)
				url.Query = cloneString(base.Query)
				url.Fragment = new(string)
				url.CannotBeABaseURL = true

				state = StateFragment
			case base.Scheme != "file":
				state = StateRelative

				in.rewindLast()
			default:
				state = StateFile

				in.rewindLast()
			}
		case StateSpecialRelativeOrAuthority:
			if r == '/' && in.remainingStartsWith("/") {
				state = StateSpecialAuthorityIgnoreSlashes

				in.next()
			} else {
				if err = p.handleError(url, errors.IllegalSlashes); err != nil {
					return
				}

				state = StateRelative

				in.rewindLast()
			}
		case StatePathOrAuthority:
			if r == '/' {
				state = StateAuthority
			} else {
				state = StatePath

				in.rewindLast()
			}
		case StateRelative:
			url.Scheme = base.Scheme

			switch {
			case in.eof:
				url.Username = base.Username
				url.Password = base.Password
				url.Host = cloneHost(base.Host)
				url.Port = clonePort(base.Port)
				url.Path = clonePath(base.Path)
				url.Query = cloneString(base.Query)
			case r == '/':
				state = StateRelativeSlash
			case r == '?':
				url.Username = base.Username
				url.Password = base.Password
				url.Host = cloneHost(base.Host)
				url.Port = clonePort(base.Port)
				url.Path = clonePath(base.Path)
				url.Query = new(string)

				state = StateQuery
			case r == '#':
				url.Username = base.Username
				url.Password = base.Password
				url.Host = cloneHost(base.Host)
				url.Port = clonePort(base.Port)
				url.Path = clonePath(base.Path)
				url.Query = cloneString(base.Query)
				url.Fragment = new(string)

				state = StateFragment
			case url.IsSpecial() && r == '\\':
				if err = p.handleError(url, errors.IllegalSlashes); err != nil {
					return
				}

				state = StateRelativeSlash
			default:
				url.Username = base.Username
				url.Password = base.Password
				url.Host = cloneHost(base.Host)
				url.Port = clonePort(base.Port)
				url.Path = clonePath(base.Path)

				if len(url.Path) > 0 {
					url.Path = url.Path[:len(url.Path)-1]
				}

				state = StatePath

				in.rewindLast()
			}
		case StateRelativeSlash:
			switch {
			case url.IsSpecial() && (r == '/' || r == '\\'):
				if r == '\\' {
					if err = p.handleError(url, errors.IllegalSlashes); err != nil {
						return
					}
				}

				state = StateSpecialAuthorityIgnoreSlashes
			case r == '/':
				state = StateAuthority
			default:
				url.Username = base.Username
				url.Password = base.Password
				url.Host = cloneHost(base.Host)
				url.Port = clonePort(base.Port)

				state = StatePath

				in.rewindLast()
			}
		case StateSpecialAuthoritySlashes:
			if r == '/' && in.remainingStartsWith("/") {
				state = StateSpecialAuthorityIgnoreSlashes

				in.next()
			} else {
				if err = p.handleError(url, errors.IllegalSlashes); err != nil {
					return
				}

				state = StateSpecialAuthorityIgnoreSlashes

				in.rewindLast()
			}
		case StateSpecialAuthorityIgnoreSlashes:
			if r != '/' && r != '\\' {
				state = StateAuthority

				in.rewindLast()
			} else {
				if err = p.handleError(url, errors.IllegalSlashes); err != nil {
					return
				}
			}
		case StateAuthority:
			switch {
			case r == '@' && !in.eof:
				if err = p.handleError(url, errors.AtInAuthority); err != nil {
					return
				}

				if atFlag {
					content := buffer.String()

					buffer.Reset()
					buffer.WriteString("%40")
					buffer.WriteString(content)
				}

				atFlag = true

				for _, c := range buffer.String() {
					if c == ':' && !passwordTokenSeenFlag {
						passwordTokenSeenFlag = true

						continue
					}

					encoded := percentencoding.EncodeRune(c, percentencoding.UserInfo)

					if passwordTokenSeenFlag {
						url.Password += encoded
					} else {
						url.Username += encoded
					}
				}

				buffer.Reset()
			case in.eof || r == '/' || r == '?' || r == '#' || (url.IsSpecial() && r == '\\'):
				if atFlag && buffer.Len() == 0 {
					err = errors.New(errors.EmptyHostname)

					return
				}

				in.rewind(utf8.RuneCountInString(buffer.String()) + 1)

				buffer.Reset()

				state = StateHost
			default:
				buffer.WriteRune(r)
			}
		case StateHost, StateHostname:
			switch {
			case overridden && url.Scheme == "file":
				state = StateFileHost

				in.rewindLast()
			case r == ':' && !in.eof && !squareBracketFlag:
				if buffer.Len() == 0 {
					err = errors.New(errors.EmptyHostname)

					return
				}

				var h host.Host

				if h, err = p.parseHost(url, buffer.String()); err != nil {
					return
				}

				url.Host = &h

				buffer.Reset()

				state = StatePort

				if override == StateHostname {
					return
				}
			case in.eof || r == '/' || r == '?' || r == '#' || (url.IsSpecial() && r == '\\'):
				in.rewindLast()

				switch {
				case url.IsSpecial() && buffer.Len() == 0:
					err = errors.New(errors.EmptyHostname)

					return
				case overridden && buffer.Len() == 0 && (url.IncludesCredentials() || url.Port != nil):
					if err = p.handleError(url, errors.EmptyHostname); err != nil {
						return
					}

					return
				default:
					var h host.Host

					if h, err = p.parseHost(url, buffer.String()); err != nil {
						return
					}

					url.Host = &h

					buffer.Reset()

					state = StatePathStart

					if overridden {
						return
					}
				}
			default:
				if r == '[' {
					squareBracketFlag = true
				}

				if r == ']' {
					squareBracketFlag = false
				}

				buffer.WriteRune(r)
			}
		case StatePort:
			switch {
			case unicodes.ASCIIDigit.Test(uint(r)):
				buffer.WriteRune(r)
			case in.eof || r == '/' || r == '?' || r == '#' || (url.IsSpecial() && r == '\\') || overridden:
				if buffer.Len() > 0 {
					value, parseErr := strconv.ParseUint(buffer.String(), 10, 16)
					if parseErr != nil {
						err = errors.New(errors.InvalidPort)

						return
					}

					port := uint16(value)
					url.Port = &port

					url.cleanDefaultPort()

					buffer.Reset()
				}

				if overridden {
					return
				}

				state = StatePathStart

				in.rewindLast()
			default:
				err = errors.New(errors.InvalidPort)

				return
			}
		case StateFile:
			url.Scheme = "file"

			url.Host = emptyHost()

			switch {
			case r == '/' || r == '\\':
				if r == '\\' {
					if err = p.handleError(url, errors.IllegalSlashes); err != nil {
						return
					}
				}

				state = StateFileSlash
			case base != nil && base.Scheme == "file":
				switch {
				case in.eof:
					url.Host = cloneHost(base.Host)
					url.Path = clonePath(base.Path)
					url.Query = cloneString(base.Query)
				case r == '?':
					url.Host = cloneHost(base.Host)
					url.Path = clonePath(base.Path)
					url.Query = new(string)

					state = StateQuery
				case r == '#':
					url.Host = cloneHost(base.Host)
					url.Path = clonePath(base.Path)
					url.Query = cloneString(base.Query)
					url.Fragment = new(string)

					state = StateFragment
				default:
					url.Host = cloneHost(base.Host)
					url.Path = clonePath(base.Path)
					url.Query = nil

					if !unicodes.StartsWithWindowsDriveLetter(in.fromCurrent()) {
						url.shortenPath()
					} else {
						if err = p.handleError(url, errors.BadWindowsDriveLetter); err != nil {
							return
						}

						url.Path = nil
					}

					state = StatePath

					in.rewindLast()
				}
			default:
				state = StatePath

				in.rewindLast()
			}
		case StateFileSlash:
			if r == '/' || r == '\\' {
				if r == '\\' {
					if err = p.handleError(url, errors.IllegalSlashes); err != nil {
						return
					}
				}

				state = StateFileHost
			} else {
				if base != nil && base.Scheme == "file" {
					if !unicodes.StartsWithWindowsDriveLetter(in.fromCurrent()) &&
						len(base.Path) > 0 && unicodes.IsNormalizedWindowsDriveLetter(base.Path[0]) {
						url.Path = append(url.Path, base.Path[0])
					} else {
						url.Host = cloneHost(base.Host)
					}
				}

				state = StatePath

				in.rewindLast()
			}
		case StateFileHost:
			if in.eof || r == '/' || r == '\\' || r == '?' || r == '#' {
				in.rewindLast()

				switch {
				case !overridden && unicodes.IsWindowsDriveLetter(buffer.String()):
					if err = p.handleError(url, errors.BadWindowsDriveLetter); err != nil {
						return
					}

					state = StatePath
				case buffer.Len() == 0:
					url.Host = emptyHost()

					if overridden {
						return
					}

					state = StatePathStart
				default:
					var h host.Host

					if h, err = p.parseHost(url, buffer.String()); err != nil {
						return
					}

					if h.String() == "localhost" {
						h = host.Empty()
					}

					url.Host = &h

					buffer.Reset()

					if overridden {
						return
					}

					state = StatePathStart
				}
			} else {
				buffer.WriteRune(r)
			}
		case StatePathStart:
			switch {
			case url.IsSpecial():
				if r == '\\' {
					if err = p.handleError(url, errors.IllegalSlashes); err != nil {
						return
					}
				}

				state = StatePath

				if r != '/' && r != '\\' {
					in.rewindLast()
				}
			case !overridden && r == '?':
				url.Query = new(string)

				state = StateQuery
			case !overridden && r == '#':
				url.Fragment = new(string)

				state = StateFragment
			case !in.eof:
				state = StatePath

				if r != '/' {
					in.rewindLast()
				}
			}
		case StatePath:
			specialBackslash := url.IsSpecial() && r == '\\'

			if in.eof || r == '/' || specialBackslash || (!overridden && (r == '?' || r == '#')) {
				if specialBackslash {
					if err = p.handleError(url, errors.IllegalSlashes); err != nil {
						return
					}
				}

				segment := buffer.String()

				switch {
				case isDoubleDotPathSegment(segment):
					url.shortenPath()

					if r != '/' && !specialBackslash {
						url.Path = append(url.Path, "")
					}
				case isSingleDotPathSegment(segment):
					if r != '/' && !specialBackslash {
						url.Path = append(url.Path, "")
					}
				default:
					if url.Scheme == "file" && len(url.Path) == 0 && unicodes.IsWindowsDriveLetter(segment) {
						if url.Host != nil && !url.Host.IsEmpty() {
							if err = p.handleError(url, errors.IllegalLocalFileAndHostCombo); err != nil {
								return
							}

							url.Host = emptyHost()
						}

						segment = segment[:1] + ":"
					}

					url.Path = append(url.Path, segment)
				}

				buffer.Reset()

				if url.Scheme == "file" && (in.eof || r == '?' || r == '#') {
					for len(url.Path) > 1 && url.Path[0] == "" {
						if err = p.handleError(url, errors.IllegalSlashes); err != nil {
							return
						}

						url.Path = url.Path[1:]
					}
				}

				if r == '?' {
					url.Query = new(string)

					state = StateQuery
				}

				if r == '#' {
					url.Fragment = new(string)

					state = StateFragment
				}
			} else {
				if !unicodes.IsURLCodePoint(r) && r != '%' {
					if err = p.handleError(url, errors.IllegalCodePoint); err != nil {
						return
					}
				}

				if r == '%' && !in.remainingStartsWithTwoHexDigits() {
					if err = p.handleError(url, errors.InvalidPercentEncoding); err != nil {
						return
					}
				}

				buffer.WriteString(percentencoding.EncodeRune(r, percentencoding.Path))
			}
		case StateCannotBeABaseURLPath:
			switch {
			case r == '?' && !in.eof:
				url.Query = new(string)

				state = StateQuery
			case r == '#' && !in.eof:
				url.Fragment = new(string)

				state = StateFragment
			case !in.eof:
				if !unicodes.IsURLCodePoint(r) && r != '%' {
					if err = p.handleError(url, errors.IllegalCodePoint); err != nil {
						return
					}
				}

				if r == '%' && !in.remainingStartsWithTwoHexDigits() {
					if err = p.handleError(url, errors.InvalidPercentEncoding); err != nil {
						return
					}
				}

				if len(url.Path) == 0 {
					url.Path = append(url.Path, "")
				}

				url.Path[0] += percentencoding.EncodeRune(r, percentencoding.C0Control)
			}
		case StateQuery:
			if !overridden && r == '#' && !in.eof {
				url.Fragment = new(string)

				state = StateFragment
			} else if !in.eof {
				if !unicodes.IsURLCodePoint(r) && r != '%' {
					if err = p.handleError(url, errors.IllegalCodePoint); err != nil {
						return
					}
				}

				if r == '%' && !in.remainingStartsWithTwoHexDigits() {
					if err = p.handleError(url, errors.InvalidPercentEncoding); err != nil {
						return
					}
				}

				set := percentencoding.Query
				if url.IsSpecial() {
					set = percentencoding.SpecialQuery
				}

				if url.Query == nil {
					url.Query = new(string)
				}

				*url.Query += percentencoding.EncodeRune(r, set)
			}
		case StateFragment:
			if !in.eof {
				if !unicodes.IsURLCodePoint(r) && r != '%' {
					if err = p.handleError(url, errors.IllegalCodePoint); err != nil {
						return
					}
				}

				if r == '%' && !in.remainingStartsWithTwoHexDigits() {
					if err = p.handleError(url, errors.InvalidPercentEncoding); err != nil {
						return
					}
				}

				if url.Fragment == nil {
					url.Fragment = new(string)
				}

				*url.Fragment += percentencoding.EncodeRune(r, percentencoding.Fragment)
			}
		}

		if in.eof {
			break
		}
	}

	return
}

// parseHost runs the host parser with the record's validation latch wired to
// the sink, escalating latched host validation errors in strict mode.
func (p *Parser) parseHost(url *Record, s string) (h host.Host, err error) {
	var latched errors.Code

	h, err = host.Parse(s, !url.IsSpecial(), func(code errors.Code) {
		url.ValidationError = true

		latched = code

		if p.sink != nil {
			p.sink(code)
		}
	})

	if err == nil && p.strict && latched != errors.Unknown {
		err = errors.New(latched)
	}

	return
}

// isSingleDotPathSegment reports whether the segment is "." or a
// percent-encoded spelling of it.
func isSingleDotPathSegment(s string) (is bool) {
	return s == "." || strings.EqualFold(s, "%2e")
}

// isDoubleDotPathSegment reports whether the segment is ".." or one of the
// percent-encoded spellings of it.
func isDoubleDotPathSegment(s string) (is bool) {
	if s == ".." {
		is = true

		return
	}

	lowered := strings.ToLower(s)

	is = lowered == ".%2e" || lowered == "%2e." || lowered == "%2e%2e"

	return
}

func emptyHost() (h *host.Host) {
	empty := host.Empty()

	return &empty
}

func cloneHost(h *host.Host) (clone *host.Host) {
	if h == nil {
		return
	}

	copied := *h
	clone = &copied

	return
}

func clonePort(port *uint16) (clone *uint16) {
	if port == nil {
		return
	}

	copied := *port
	clone = &copied

	return
}

func clonePath(path []string) (clone []string) {
	if path == nil {
		return
	}

	clone = append([]string(nil), path...)

	return
}

func cloneString(s *string) (clone *string) {
	if s == nil {
		return
	}

	copied := *s
	clone = &copied

	return
}
