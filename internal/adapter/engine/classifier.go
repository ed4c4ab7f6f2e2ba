package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pretamane/bing-crawling-api/internal/domain/entity"
)

// NaiveBayesClassifier is a multinomial Naive Bayes text classifier over
// count features. Immutable after training and safe for concurrent use.
type NaiveBayesClassifier struct {
	classes   []string             // lexicographic order
	logPriors []float64            // log P(class)
	counts    []map[string]float64 // per-class token counts
	totals    []float64            // per-class total token count
	vocab     map[string]struct{}
}

// TrainClassifier fits a classifier on the given corpus. The corpus must be
// non-empty, carry at least two classes, and every example must be labeled.
func TrainClassifier(corpus []entity.TrainingExample) (*NaiveBayesClassifier, error) {
	if len(corpus) == 0 {
		return nil, errors.New("training corpus is empty")
	}

	classSet := make(map[string]int)
	for i, ex := range corpus {
		if ex.Text == "" {
			return nil, fmt.Errorf("training example %d has empty text", i)
		}
		if ex.Label == "" {
			return nil, fmt.Errorf("training example %d has empty label", i)
		}
		classSet[ex.Label]++
	}
	if len(classSet) < 2 {
		return nil, errors.New("training corpus must contain at least two classes")
	}

	classes := make([]string, 0, len(classSet))
	for class := range classSet {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	classIndex := make(map[string]int, len(classes))
	for i, class := range classes {
		classIndex[class] = i
	}

	c := &NaiveBayesClassifier{
		classes:   classes,
		logPriors: make([]float64, len(classes)),
		counts:    make([]map[string]float64, len(classes)),
		totals:    make([]float64, len(classes)),
		vocab:     make(map[string]struct{}),
	}
	for i := range c.counts {
		c.counts[i] = make(map[string]float64)
	}

	for i, class := range classes {
		c.logPriors[i] = math.Log(float64(classSet[class]) / float64(len(corpus)))
	}

	for _, ex := range corpus {
		idx := classIndex[ex.Label]
		for _, term := range features(ex.Text) {
			c.counts[idx][term]++
			c.totals[idx]++
			c.vocab[term] = struct{}{}
		}
	}

	return c, nil
}

// Classes returns the trained label set in lexicographic order
func (c *NaiveBayesClassifier) Classes() []string {
	classes := make([]string, len(c.classes))
	copy(classes, c.classes)
	return classes
}

// Classify predicts the topic of text. The category is the argmax of the
// posterior distribution and the confidence is that same maximum probability.
// Input with no in-vocabulary tokens falls back to the class priors, with
// ties broken by class order.
func (c *NaiveBayesClassifier) Classify(text string) *entity.ClassificationResult {
	scores := make([]float64, len(c.classes))
	copy(scores, c.logPriors)

	vocabSize := float64(len(c.vocab))
	for _, term := range features(text) {
		if _, ok := c.vocab[term]; !ok {
			continue
		}
		for i := range c.classes {
			// Laplace smoothing, alpha = 1
			scores[i] += math.Log((c.counts[i][term] + 1) / (c.totals[i] + vocabSize))
		}
	}

	probs := softmax(scores)

	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}

	return &entity.ClassificationResult{
		Category:   c.classes[best],
		Confidence: probs[best],
	}
}

// features extracts count-vectorizer terms: lowercase word tokens of at
// least two characters.
func features(text string) []string {
	var terms []string
	for _, tok := range Tokenize(text) {
		term := strings.ToLower(strings.Trim(tok.Term, "-"))
		if len(term) < 2 {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

// softmax converts log scores into a probability distribution
func softmax(scores []float64) []float64 {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}

	probs := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		probs[i] = math.Exp(s - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
