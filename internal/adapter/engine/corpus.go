package engine

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pretamane/bing-crawling-api/internal/domain/entity"
)

// defaultCorpus is the build-time training set for the topic classifier
var defaultCorpus = []entity.TrainingExample{
	{Text: "Apple released a new iPhone today", Label: "Tech"},
	{Text: "Google updates search algorithm", Label: "Tech"},
	{Text: "Python release notes", Label: "Tech"},
	{Text: "Stock markets hit record high", Label: "Finance"},
	{Text: "Fed raises interest rates", Label: "Finance"},
	{Text: "Bitcoin price drops", Label: "Finance"},
	{Text: "New vaccine approved by FDA", Label: "Health"},
	{Text: "Benefits of meditation", Label: "Health"},
	{Text: "COVID-19 case numbers", Label: "Health"},
	{Text: "Manchester United wins match", Label: "Sports"},
	{Text: "NBA finals scores", Label: "Sports"},
	{Text: "Olympics gold medal", Label: "Sports"},
}

// DefaultCorpus returns a copy of the embedded training corpus
func DefaultCorpus() []entity.TrainingExample {
	corpus := make([]entity.TrainingExample, len(defaultCorpus))
	copy(corpus, defaultCorpus)
	return corpus
}

// corpusFile is the on-disk shape of an externalized training corpus
type corpusFile struct {
	Examples []entity.TrainingExample `yaml:"examples"`
}

// LoadCorpusFile loads a training corpus from a YAML file. The file must hold
// a flat list of text/label pairs.
func LoadCorpusFile(path string) ([]entity.TrainingExample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %q: %w", path, err)
	}

	var file corpusFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %q: %w", path, err)
	}
	if len(file.Examples) == 0 {
		return nil, errors.New("invalid corpus: no examples")
	}

	return file.Examples, nil
}
