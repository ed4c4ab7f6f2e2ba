package engine

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pretamane/bing-crawling-api/internal/domain/entity"
)

// moneyPattern recognizes currency amounts like "$3.5 billion" or "200 dollars"
var moneyPattern = regexp.MustCompile(
	`(?i)\$\s?\d[\d,]*(?:\.\d+)?(?:\s(?:million|billion|trillion))?` +
		`|\d[\d,]*(?:\.\d+)?\s(?:dollars|euros|pounds|cents)\b`,
)

// span is a candidate entity before allow-list filtering
type span struct {
	start int
	end   int
	label string
}

// LexiconExtractor recognizes named entities by greedy longest-match against
// a pretrained lexicon, with pattern rules for money amounts.
type LexiconExtractor struct {
	lexicon *Lexicon
}

// NewLexiconExtractor creates an extractor backed by the given lexicon
func NewLexiconExtractor(lexicon *Lexicon) *LexiconExtractor {
	return &LexiconExtractor{lexicon: lexicon}
}

// Extract recognizes entities in text. Candidates carrying labels outside the
// output allow-list are dropped; survivors keep their order of appearance.
func (e *LexiconExtractor) Extract(text string) *entity.NERResult {
	spans := e.matchPatterns(text)
	spans = append(spans, e.matchLexicon(text, spans)...)

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var entities []entity.Entity
	for _, s := range spans {
		label := entity.EntityLabel(s.label)
		if !entity.IsAllowedLabel(label) {
			continue
		}
		entities = append(entities, entity.Entity{
			Text:  text[s.start:s.end],
			Label: label,
		})
	}

	return entity.NewNERResult(entities)
}

// matchPatterns finds rule-based spans (currently money amounts)
func (e *LexiconExtractor) matchPatterns(text string) []span {
	var spans []span
	for _, loc := range moneyPattern.FindAllStringIndex(text, -1) {
		spans = append(spans, span{start: loc[0], end: loc[1], label: string(entity.LabelMoney)})
	}
	return spans
}

// matchLexicon applies greedy longest-match of lexicon phrases over the token
// stream, skipping tokens already claimed by a pattern span.
func (e *LexiconExtractor) matchLexicon(text string, claimed []span) []span {
	tokens := Tokenize(text)

	var spans []span
	i := 0
	for i < len(tokens) {
		if overlaps(claimed, tokens[i].Start, tokens[i].End) {
			i++
			continue
		}

		maxLen := e.lexicon.MaxPhraseLen()
		if remaining := len(tokens) - i; maxLen > remaining {
			maxLen = remaining
		}

		matched := 0
		for n := maxLen; n >= 1; n-- {
			last := tokens[i+n-1]
			if overlaps(claimed, tokens[i].Start, last.End) {
				continue
			}
			if label, ok := e.lexicon.Lookup(joinTerms(tokens[i : i+n])); ok {
				spans = append(spans, span{start: tokens[i].Start, end: last.End, label: label})
				matched = n
				break
			}
		}

		if matched > 0 {
			i += matched
		} else {
			i++
		}
	}

	return spans
}

func joinTerms(tokens []Token) string {
	terms := make([]string, len(tokens))
	for i, t := range tokens {
		terms[i] = t.Term
	}
	return strings.Join(terms, " ")
}

func overlaps(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}
