package unicodes_test

import (
	"fmt"
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/hueristiq/hq-go-whatwg-url/unicodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURLCodePoint(t *testing.T) {
	t.Parallel()

	cases := []struct {
		r        rune
		expected bool
	}{
		{'a', true},
		{'Z', true},
		{'0', true},
		{'!', true},
		{'~', true},
		{'/', true},
		{'?', true},
		{'@', true},
		{' ', false},
		{'"', false},
		{'<', false},
		{'>', false},
		{'`', false},
		{'{', false},
		{'\\', false},
		{'%', false},
		{0x1f, false},
		{0x7f, false},
		{0xa0, true},
		{'é', true},
		{'雪', true},
		{0xfdd0, false},
		{0xfffe, false},
		{0x1ffff, false},
		{0x10fffd, true},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("IsURLCodePoint(%U)", c.r), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, unicodes.IsURLCodePoint(c.r))
		})
	}
}

func TestWindowsDriveLetters(t *testing.T) {
	t.Parallel()

	assert.True(t, unicodes.IsWindowsDriveLetter("c:"))
	assert.True(t, unicodes.IsWindowsDriveLetter("C|"))
	assert.False(t, unicodes.IsWindowsDriveLetter("c"))
	assert.False(t, unicodes.IsWindowsDriveLetter("cc"))
	assert.False(t, unicodes.IsWindowsDriveLetter("c:/"))

	assert.True(t, unicodes.IsNormalizedWindowsDriveLetter("c:"))
	assert.False(t, unicodes.IsNormalizedWindowsDriveLetter("c|"))

	assert.True(t, unicodes.StartsWithWindowsDriveLetter("c:"))
	assert.True(t, unicodes.StartsWithWindowsDriveLetter("c:/foo"))
	assert.True(t, unicodes.StartsWithWindowsDriveLetter("c|\\foo"))
	assert.True(t, unicodes.StartsWithWindowsDriveLetter("c:?q"))
	assert.False(t, unicodes.StartsWithWindowsDriveLetter("c:a"))
	assert.False(t, unicodes.StartsWithWindowsDriveLetter("cc/"))
}

func TestTrim(t *testing.T) {
	t.Parallel()

	trimmed, changed := unicodes.Trim("  \t http://example.com \x00", unicodes.C0ControlOrSpace)

	assert.True(t, changed)
	assert.Equal(t, "http://example.com", trimmed)

	trimmed, changed = unicodes.Trim("http://example.com", unicodes.C0ControlOrSpace)

	assert.False(t, changed)
	assert.Equal(t, "http://example.com", trimmed)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	removed, changed := unicodes.Remove("ht\ttp://exa\nmple.com\r", unicodes.ASCIITabOrNewline)

	assert.True(t, changed)
	assert.Equal(t, "http://example.com", removed)

	removed, changed = unicodes.Remove("http://example.com", unicodes.ASCIITabOrNewline)

	assert.False(t, changed)
	assert.Equal(t, "http://example.com", removed)
}

func TestFromUTF16(t *testing.T) {
	t.Parallel()

	s, err := unicodes.FromUTF16([]uint16{'h', 'i', 0xd83d, 0xde00})

	require.NoError(t, err)
	assert.Equal(t, "hi\U0001F600", s)

	_, err = unicodes.FromUTF16([]uint16{'h', 0xd83d})

	require.Error(t, err)
	assert.Equal(t, errors.InvalidUnicodeCharacter, errors.CodeOf(err))

	_, err = unicodes.FromUTF16([]uint16{0xde00, 'h'})

	require.Error(t, err)
	assert.Equal(t, errors.InvalidUnicodeCharacter, errors.CodeOf(err))
}

func TestFromUTF32(t *testing.T) {
	t.Parallel()

	s, err := unicodes.FromUTF32([]rune{'é', '/', 0x10000})

	require.NoError(t, err)
	assert.Equal(t, "é/\U00010000", s)

	_, err = unicodes.FromUTF32([]rune{0xd800})

	require.Error(t, err)
	assert.Equal(t, errors.InvalidUnicodeCharacter, errors.CodeOf(err))
}

func TestFromBytes(t *testing.T) {
	t.Parallel()

	s, err := unicodes.FromBytes([]byte("héllo"))

	require.NoError(t, err)
	assert.Equal(t, "héllo", s)

	_, err = unicodes.FromBytes([]byte{0xff, 0xfe})

	require.Error(t, err)
	assert.Equal(t, errors.InvalidUnicodeCharacter, errors.CodeOf(err))
}
