package parser

import (
	"strings"

	"github.com/hueristiq/hq-go-whatwg-url/unicodes"
)

// input is the parser's cursor over the preprocessed input, advancing one
// code point at a time. The pointer sits past the code point most recently
// returned by next; at the end of the input, next reports EOF and keeps
// advancing so that the standard's "decrease pointer by n" arithmetic works
// uniformly from both positions.
type input struct {
	runes   []rune
	pointer int
	eof     bool
}

func newInput(s string) (in *input) {
	return &input{runes: []rune(s)}
}

// next consumes and returns the next code point. Past the end it sets the
// EOF flag and returns 0.
func (in *input) next() (r rune) {
	if in.pointer >= len(in.runes) {
		in.eof = true
		in.pointer++

		return
	}

	r = in.runes[in.pointer]
	in.pointer++

	return
}

// rewind moves the cursor back n code points and clears the EOF flag.
func (in *input) rewind(n int) {
	in.pointer -= n

	if in.pointer < 0 {
		in.pointer = 0
	}

	in.eof = false
}

// rewindLast un-consumes the most recent code point.
func (in *input) rewindLast() {
	in.rewind(1)
}

// reset moves the cursor back to the beginning of the input.
func (in *input) reset() {
	in.pointer = 0
	in.eof = false
}

// remaining returns the input after the current code point.
func (in *input) remaining() (s string) {
	if in.pointer >= len(in.runes) {
		return
	}

	s = string(in.runes[in.pointer:])

	return
}

// remainingStartsWith reports whether the input after the current code point
// begins with the prefix.
func (in *input) remainingStartsWith(prefix string) (starts bool) {
	return strings.HasPrefix(in.remaining(), prefix)
}

// fromCurrent returns the input from the current code point onward.
func (in *input) fromCurrent() (s string) {
	start := in.pointer - 1

	if start < 0 {
		start = 0
	}

	if start >= len(in.runes) {
		return
	}

	s = string(in.runes[start:])

	return
}

// remainingStartsWithTwoHexDigits reports whether the two code points after
// the current one are ASCII hex digits. It backs the "%" validation in
// paths, queries, and fragments.
func (in *input) remainingStartsWithTwoHexDigits() (starts bool) {
	if in.pointer+1 >= len(in.runes) {
		return
	}

	starts = unicodes.ASCIIHexDigit.Test(uint(in.runes[in.pointer])) &&
		unicodes.ASCIIHexDigit.Test(uint(in.runes[in.pointer+1]))

	return
}
