package engine

import "unicode"

// Token is a single word of the input with its byte offsets preserved,
// so entity spans can be reported as exact substrings of the original text.
type Token struct {
	Term  string
	Start int
	End   int
}

// Tokenize splits text into word tokens, keeping original casing and
// byte offsets. A token is a maximal run of letters, digits and hyphens.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1

	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Token{Term: text[start:i], Start: start, End: i})
			start = -1
		}
	}

	if start >= 0 {
		tokens = append(tokens, Token{Term: text[start:], Start: start, End: len(text)})
	}

	return tokens
}
