package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Run("splits words with byte offsets", func(t *testing.T) {
		tokens := Tokenize("Apple released iPhone")

		assert.Len(t, tokens, 3)
		assert.Equal(t, Token{Term: "Apple", Start: 0, End: 5}, tokens[0])
		assert.Equal(t, Token{Term: "released", Start: 6, End: 14}, tokens[1])
		assert.Equal(t, Token{Term: "iPhone", Start: 15, End: 21}, tokens[2])
	})

	t.Run("keeps hyphenated tokens together", func(t *testing.T) {
		tokens := Tokenize("COVID-19 case numbers")

		assert.Equal(t, "COVID-19", tokens[0].Term)
		assert.Len(t, tokens, 3)
	})

	t.Run("ignores punctuation", func(t *testing.T) {
		tokens := Tokenize("Hello, world! (Really.)")

		assert.Len(t, tokens, 3)
		assert.Equal(t, "Hello", tokens[0].Term)
		assert.Equal(t, "world", tokens[1].Term)
		assert.Equal(t, "Really", tokens[2].Term)
	})

	t.Run("preserves original casing", func(t *testing.T) {
		tokens := Tokenize("NBA Finals")

		assert.Equal(t, "NBA", tokens[0].Term)
		assert.Equal(t, "Finals", tokens[1].Term)
	})

	t.Run("handles trailing token", func(t *testing.T) {
		tokens := Tokenize("match today")

		assert.Len(t, tokens, 2)
		assert.Equal(t, Token{Term: "today", Start: 6, End: 11}, tokens[1])
	})

	t.Run("empty input yields no tokens", func(t *testing.T) {
		assert.Empty(t, Tokenize(""))
		assert.Empty(t, Tokenize("  ,.!  "))
	})
}
