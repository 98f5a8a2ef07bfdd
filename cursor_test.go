package jade

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorPeekAndConsume(t *testing.T) {
	c := newCursor("hello\nworld\n")
	assert.Equal(t, "hel", c.peek(3))
	assert.Equal(t, 0, c.position)
	c.consume(3)
	assert.Equal(t, "lo\nworld\n", c.input)
	assert.Equal(t, 3, c.position)
	assert.Equal(t, 3, c.offset)
}

func TestCursorIsAtEnd(t *testing.T) {
	c := newCursor("ab")
	require.False(t, c.isAtEnd())
	c.consume(2)
	require.True(t, c.isAtEnd())
}

func TestCursorMatchAndGetMatch(t *testing.T) {
	c := newCursor("foo123 bar")
	re := regexp.MustCompile(`^([a-z]+)(\d+)`)
	require.True(t, c.match(re))
	name, ok := c.getMatch("1")
	require.True(t, ok)
	assert.Equal(t, "foo", name)
	num, ok := c.getMatch("2")
	require.True(t, ok)
	assert.Equal(t, "123", num)
	assert.Equal(t, "foo123", c.matchText())
}

func TestCursorGetMatchEmptyGroupIsAbsent(t *testing.T) {
	c := newCursor("foo")
	re := regexp.MustCompile(`^(foo)(bar)?`)
	require.True(t, c.match(re))
	_, ok := c.getMatch("2")
	assert.False(t, ok, "an empty capture should report absent")
}

func TestCursorConsumeMatchLeavesTrailingNewlines(t *testing.T) {
	c := newCursor("abc\n\ndef")
	re := regexp.MustCompile(`^abc\n\n`)
	require.True(t, c.match(re))
	c.consumeMatch()
	assert.Equal(t, "\n\ndef", c.input, "trailing newlines must be left for the newLine scanner")
}

func TestCursorReadTracksLineAndOffset(t *testing.T) {
	c := newCursor("ab\ncd")
	got := c.read(func(s string) bool { return s != "" }, 1)
	assert.Equal(t, "ab\ncd", got)
	assert.Equal(t, 2, c.line)
	assert.Equal(t, 2, c.offset)
}

func TestCursorReadSpaces(t *testing.T) {
	c := newCursor("   x")
	n := c.readSpaces()
	assert.Equal(t, 3, n)
	assert.Equal(t, "x", c.input)
}

func TestRuneByteLenUnicode(t *testing.T) {
	// "h" is one byte, "é" is two: the first two runes span three bytes.
	n := runeByteLen("héllo", 2)
	assert.Equal(t, 3, n)
}
