package engine

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed resources/*.yaml
var lexiconFS embed.FS

// ErrResourceNotFound indicates the named lexicon resource could not be located
var ErrResourceNotFound = errors.New("lexicon resource not found")

// embeddedLexicons maps resource identifiers to embedded resource files
var embeddedLexicons = map[string]string{
	"en-base": "resources/en_base.yaml",
}

// lexiconFile is the on-disk shape of a lexicon resource
type lexiconFile struct {
	Name    string              `yaml:"name"`
	Version string              `yaml:"version"`
	Labels  map[string][]string `yaml:"labels"`
}

// Lexicon is a pretrained entity dictionary: phrases mapped to native labels.
// Immutable after construction and safe for concurrent use.
type Lexicon struct {
	name    string
	version string
	phrases map[string]string // lowercase phrase -> native label
	maxLen  int               // longest phrase, in tokens
}

// LoadLexicon loads an embedded lexicon resource by its fixed identifier
func LoadLexicon(name string) (*Lexicon, error) {
	path, ok := embeddedLexicons[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrResourceNotFound, name)
	}

	data, err := lexiconFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrResourceNotFound, name, err)
	}

	return parseLexicon(data)
}

// LoadLexiconFile loads a lexicon resource from an external file path
func LoadLexiconFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrResourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to read lexicon file %q: %w", path, err)
	}

	return parseLexicon(data)
}

func parseLexicon(data []byte) (*Lexicon, error) {
	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if file.Name == "" {
		return nil, errors.New("invalid lexicon: missing name")
	}
	if len(file.Labels) == 0 {
		return nil, errors.New("invalid lexicon: no labels")
	}

	lex := &Lexicon{
		name:    file.Name,
		version: file.Version,
		phrases: make(map[string]string),
		maxLen:  1,
	}
	for label, phrases := range file.Labels {
		for _, phrase := range phrases {
			key := normalizePhrase(phrase)
			if key == "" {
				continue
			}
			lex.phrases[key] = label
			if n := len(strings.Fields(key)); n > lex.maxLen {
				lex.maxLen = n
			}
		}
	}

	return lex, nil
}

// Name returns the lexicon's resource identifier
func (l *Lexicon) Name() string {
	return l.name
}

// Version returns the lexicon's resource version
func (l *Lexicon) Version() string {
	return l.version
}

// Lookup returns the native label for a normalized phrase, if present
func (l *Lexicon) Lookup(phrase string) (string, bool) {
	label, ok := l.phrases[normalizePhrase(phrase)]
	return label, ok
}

// MaxPhraseLen returns the longest dictionary phrase length in tokens
func (l *Lexicon) MaxPhraseLen() int {
	return l.maxLen
}

// normalizePhrase lowercases and collapses whitespace to the dictionary form
func normalizePhrase(phrase string) string {
	return strings.ToLower(strings.Join(strings.Fields(phrase), " "))
}
