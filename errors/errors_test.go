package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/hueristiq/hq-go-whatwg-url/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	t.Parallel()

	err := errors.New(errors.InvalidPort)

	assert.Equal(t, "invalid port", err.Error())

	wrapped := errors.Wrap(errors.InvalidIPv6Address, errors.New(errors.IPv6InvalidPiece))

	assert.Equal(t, "invalid IPv6 address: invalid IPv6 piece", wrapped.Error())
}

func TestError_CodeOf(t *testing.T) {
	t.Parallel()

	err := errors.New(errors.EmptyHostname)

	assert.Equal(t, errors.EmptyHostname, errors.CodeOf(err))

	wrapped := fmt.Errorf("while parsing: %w", err)

	assert.Equal(t, errors.EmptyHostname, errors.CodeOf(wrapped))

	assert.Equal(t, errors.Unknown, errors.CodeOf(nil))
	assert.Equal(t, errors.Unknown, errors.CodeOf(stderrors.New("plain")))
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	err := errors.Wrap(errors.DomainError, stderrors.New("underlying"))

	assert.True(t, stderrors.Is(err, errors.New(errors.DomainError)))
	assert.False(t, stderrors.Is(err, errors.New(errors.InvalidPort)))
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("underlying")
	err := errors.Wrap(errors.DomainError, cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestCode_IsValidation(t *testing.T) {
	t.Parallel()

	assert.False(t, errors.InvalidPort.IsValidation())
	assert.False(t, errors.IPv6InvalidPiece.IsValidation())
	assert.False(t, errors.IPv4Overflow.IsValidation())
	assert.True(t, errors.IllegalWhitespace.IsValidation())
	assert.True(t, errors.IPv4NumberOutOfRange.IsValidation())
}

func TestCode_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "invalid scheme character", errors.InvalidSchemeCharacter.Message())
	assert.Equal(t, "unknown error", errors.Code(9999).Message())
}
