package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPeekDoesNotConsume(t *testing.T) {
	p := Upgrade(NewDefaultScanner("", "a b"), Space)
	require.Equal(t, "a", p.Peek(0).Value)
	require.Equal(t, "a", p.Peek(0).Value)
	require.Equal(t, "a", p.Next().Value)
	require.Equal(t, "b", p.Peek(0).Value)
	require.Equal(t, "b", p.Next().Value)
	require.True(t, p.Peek(0).EOF())
	require.True(t, p.Next().EOF())
	require.True(t, p.Next().EOF())
}

func TestPeekAhead(t *testing.T) {
	p := Upgrade(NewDefaultScanner("", "a b c"), Space)
	require.Equal(t, "a", p.Peek(0).Value)
	require.Equal(t, "b", p.Peek(1).Value)
	require.Equal(t, "c", p.Peek(2).Value)
	require.True(t, p.Peek(3).EOF())
}

func TestConsumeDiscards(t *testing.T) {
	p := Upgrade(NewDefaultScanner("", "a b"), Space)
	p.Consume()
	require.Equal(t, "b", p.Next().Value)
}

func TestElideSkipsCommentsAndWhitespace(t *testing.T) {
	p := Upgrade(NewDefaultScanner("", "a // comment\n b"), Comment, Space)
	require.Equal(t, Ident, p.Peek(0).Type)
	require.Equal(t, "a", p.Next().Value)
	require.Equal(t, "b", p.Next().Value)
	require.True(t, p.Next().EOF())
}

func TestNoElideKeepsAllTokens(t *testing.T) {
	p := Upgrade(NewDefaultScanner("", "a b"))
	require.Equal(t, "a", p.Next().Value)
	require.Equal(t, Space, p.Next().Type)
	require.Equal(t, "b", p.Next().Value)
}
