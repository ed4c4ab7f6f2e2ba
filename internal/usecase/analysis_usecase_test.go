package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pretamane/bing-crawling-api/internal/domain/entity"
	"github.com/pretamane/bing-crawling-api/internal/domain/service"
	"github.com/pretamane/bing-crawling-api/internal/registry"
)

type stubExtractor struct {
	result *entity.NERResult
}

func (s stubExtractor) Extract(text string) *entity.NERResult {
	return s.result
}

type stubClassifier struct {
	result *entity.ClassificationResult
}

func (s stubClassifier) Classify(text string) *entity.ClassificationResult {
	return s.result
}

// mapCache is an in-memory ResultCache for tests
type mapCache struct {
	entries map[string]string
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]string)}
}

func (c *mapCache) Get(ctx context.Context, key string) (string, bool) {
	value, ok := c.entries[key]
	return value, ok
}

func (c *mapCache) Set(ctx context.Context, key, value string) {
	c.entries[key] = value
}

func workingRegistry(ner *entity.NERResult, cls *entity.ClassificationResult) *registry.Registry {
	return registry.New(
		func() (service.EntityExtractor, error) { return stubExtractor{result: ner}, nil },
		func() (service.TopicClassifier, error) { return stubClassifier{result: cls}, nil },
		nil,
	)
}

func failingRegistry(builds *int32) *registry.Registry {
	fail := func() error {
		if builds != nil {
			atomic.AddInt32(builds, 1)
		}
		return errors.New("resource missing")
	}
	return registry.New(
		func() (service.EntityExtractor, error) { return nil, fail() },
		func() (service.TopicClassifier, error) { return nil, fail() },
		nil,
	)
}

func TestAnalysisUsecase_ExtractEntities(t *testing.T) {
	t.Run("delegates to the extractor unchanged", func(t *testing.T) {
		expected := entity.NewNERResult([]entity.Entity{
			{Text: "Apple", Label: entity.LabelOrg},
			{Text: "today", Label: entity.LabelDate},
		})
		uc := NewAnalysisUsecase(workingRegistry(expected, nil), nil)

		result, err := uc.ExtractEntities(context.Background(), "Apple today")

		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})

	t.Run("unavailable engine yields service unavailable", func(t *testing.T) {
		uc := NewAnalysisUsecase(failingRegistry(nil), nil)

		result, err := uc.ExtractEntities(context.Background(), "Apple today")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("each request retries construction exactly once", func(t *testing.T) {
		var builds int32
		uc := NewAnalysisUsecase(failingRegistry(&builds), nil)

		_, err := uc.ExtractEntities(context.Background(), "first")
		assert.ErrorIs(t, err, ErrServiceUnavailable)
		_, err = uc.ExtractEntities(context.Background(), "second")
		assert.ErrorIs(t, err, ErrServiceUnavailable)

		assert.EqualValues(t, 2, atomic.LoadInt32(&builds))
	})

	t.Run("empty text is rejected before any engine work", func(t *testing.T) {
		var builds int32
		uc := NewAnalysisUsecase(failingRegistry(&builds), nil)

		result, err := uc.ExtractEntities(context.Background(), "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.EqualValues(t, 0, atomic.LoadInt32(&builds))
	})
}

func TestAnalysisUsecase_ClassifyText(t *testing.T) {
	t.Run("delegates to the classifier unchanged", func(t *testing.T) {
		expected := &entity.ClassificationResult{Category: "Tech", Confidence: 0.92}
		uc := NewAnalysisUsecase(workingRegistry(nil, expected), nil)

		result, err := uc.ClassifyText(context.Background(), "Apple released a new iPhone today")

		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})

	t.Run("unavailable engine yields service unavailable", func(t *testing.T) {
		uc := NewAnalysisUsecase(failingRegistry(nil), nil)

		result, err := uc.ClassifyText(context.Background(), "anything")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		uc := NewAnalysisUsecase(workingRegistry(nil, &entity.ClassificationResult{Category: "Finance", Confidence: 0.25}), nil)

		result, err := uc.ClassifyText(context.Background(), "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestAnalysisUsecase_ResultCache(t *testing.T) {
	t.Run("successful results are cached and reused", func(t *testing.T) {
		cache := newMapCache()
		expected := &entity.ClassificationResult{Category: "Sports", Confidence: 0.88}
		warm := NewAnalysisUsecase(workingRegistry(nil, expected), cache)

		_, err := warm.ClassifyText(context.Background(), "Manchester United wins match")
		require.NoError(t, err)
		assert.NotEmpty(t, cache.entries)

		// same cache, broken registry: the cached result is served
		cold := NewAnalysisUsecase(failingRegistry(nil), cache)

		result, err := cold.ClassifyText(context.Background(), "Manchester United wins match")

		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})

	t.Run("ner and classify results never collide", func(t *testing.T) {
		cache := newMapCache()
		ner := entity.NewNERResult([]entity.Entity{{Text: "Apple", Label: entity.LabelOrg}})
		cls := &entity.ClassificationResult{Category: "Tech", Confidence: 0.9}
		uc := NewAnalysisUsecase(workingRegistry(ner, cls), cache)

		_, err := uc.ExtractEntities(context.Background(), "same text")
		require.NoError(t, err)
		_, err = uc.ClassifyText(context.Background(), "same text")
		require.NoError(t, err)

		assert.Len(t, cache.entries, 2)
	})

	t.Run("cache miss falls through to the engine", func(t *testing.T) {
		cache := newMapCache()
		expected := entity.NewNERResult(nil)
		uc := NewAnalysisUsecase(workingRegistry(expected, nil), cache)

		result, err := uc.ExtractEntities(context.Background(), "fresh text")

		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})
}
