package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/pretamane/bing-crawling-api/internal/domain/entity"
	"github.com/pretamane/bing-crawling-api/internal/infrastructure/metrics"
	"github.com/pretamane/bing-crawling-api/internal/registry"
)

// Error definitions for the analysis usecase
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrServiceUnavailable = errors.New("analysis engine unavailable")
)

// AnalysisUsecase exposes the two analysis capabilities behind a readiness check
type AnalysisUsecase interface {
	// ExtractEntities runs named-entity extraction over text
	ExtractEntities(ctx context.Context, text string) (*entity.NERResult, error)

	// ClassifyText runs topic classification over text
	ClassifyText(ctx context.Context, text string) (*entity.ClassificationResult, error)
}

// ResultCache memoizes serialized results. Implementations must tolerate
// backend failures silently; a cache miss is never an error.
type ResultCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

type analysisUsecase struct {
	registry *registry.Registry
	cache    ResultCache // optional, may be nil
}

// NewAnalysisUsecase creates a new analysis usecase. The cache may be nil.
func NewAnalysisUsecase(reg *registry.Registry, cache ResultCache) AnalysisUsecase {
	return &analysisUsecase{registry: reg, cache: cache}
}

// ExtractEntities rejects empty text, ensures the extractor is ready, then
// delegates. The single EnsureReady call embodies the bounded retry: an
// Unavailable slot gets one reconstruction attempt per request, never a
// retry loop.
func (u *analysisUsecase) ExtractEntities(ctx context.Context, text string) (*entity.NERResult, error) {
	if text == "" {
		return nil, ErrInvalidRequest
	}

	key := cacheKey("ner", text)
	if cached, ok := u.cacheGet(ctx, key); ok {
		var result entity.NERResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	if u.registry.EnsureReady(registry.CapabilityExtractor) != registry.StateReady {
		return nil, ErrServiceUnavailable
	}
	extractor := u.registry.Extractor()
	if extractor == nil {
		return nil, ErrServiceUnavailable
	}

	start := time.Now()
	result := extractor.Extract(text)
	metrics.InferenceDuration.WithLabelValues("ner").Observe(time.Since(start).Seconds())

	u.cacheSet(ctx, key, result)
	return result, nil
}

// ClassifyText rejects empty text, ensures the classifier is ready, then delegates
func (u *analysisUsecase) ClassifyText(ctx context.Context, text string) (*entity.ClassificationResult, error) {
	if text == "" {
		return nil, ErrInvalidRequest
	}

	key := cacheKey("classify", text)
	if cached, ok := u.cacheGet(ctx, key); ok {
		var result entity.ClassificationResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	if u.registry.EnsureReady(registry.CapabilityClassifier) != registry.StateReady {
		return nil, ErrServiceUnavailable
	}
	classifier := u.registry.Classifier()
	if classifier == nil {
		return nil, ErrServiceUnavailable
	}

	start := time.Now()
	result := classifier.Classify(text)
	metrics.InferenceDuration.WithLabelValues("classify").Observe(time.Since(start).Seconds())

	u.cacheSet(ctx, key, result)
	return result, nil
}

func (u *analysisUsecase) cacheGet(ctx context.Context, key string) (string, bool) {
	if u.cache == nil {
		return "", false
	}
	return u.cache.Get(ctx, key)
}

func (u *analysisUsecase) cacheSet(ctx context.Context, key string, result interface{}) {
	if u.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	u.cache.Set(ctx, key, string(data))
}

func cacheKey(operation, text string) string {
	sum := sha256.Sum256([]byte(text))
	return "analysis:" + operation + ":" + hex.EncodeToString(sum[:])
}
