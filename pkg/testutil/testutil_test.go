package testutil

import (
	"testing"

	"github.com/arthur-debert/boxtext/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFakeEnv(t *testing.T) {
	env := InteractiveEnv()
	piped := env.With("NO_COLOR", "1").Piped()

	v, ok := piped.LookupEnv("NO_COLOR")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.False(t, piped.IsTerminal())

	_, ok = env.LookupEnv("NO_COLOR")
	assert.False(t, ok, "With must not modify the receiver")
	assert.True(t, env.IsTerminal())
}

func TestMaxLineWidth(t *testing.T) {
	assert.Equal(t, 0, MaxLineWidth(""))
	assert.Equal(t, 4, MaxLineWidth("ab\n\x1b[1mabcd\x1b[0m\nabc"))
	assert.Equal(t, 4, MaxLineWidth("日本"))
}

func TestAssertions(t *testing.T) {
	AssertNoControlSequences(t, "plain text")
	AssertMaxWidth(t, "abc\nde", 3)
	AssertErrorCode(t, errors.New(errors.ErrInvalidStyle, "bad"), errors.ErrInvalidStyle)
}

func TestNested(t *testing.T) {
	b := Nested(3)

	assert.Len(t, b.Children, 2)
	assert.Nil(t, Nested(0))
}
