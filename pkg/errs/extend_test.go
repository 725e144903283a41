package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtend(t *testing.T) {
	require.EqualError(t, Extend(errors.New("a"), "b"), "b: a")
}

func TestExtendKeepsType(t *testing.T) {
	err := Extend(NewInvalidDigit('Z', 3, 16), "b")
	_, ok := err.(*InvalidDigit)
	assert.True(t, ok, "unexpected error type %T", err)

	err = Extend(errors.New("a"), "b")
	_, ok = err.(Extender)
	assert.False(t, ok)
}
