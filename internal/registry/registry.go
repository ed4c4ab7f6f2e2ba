package registry

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pretamane/bing-crawling-api/internal/domain/service"
	"github.com/pretamane/bing-crawling-api/internal/infrastructure/metrics"
)

// Capability identifies one of the registry's analytic engines
type Capability string

const (
	CapabilityExtractor  Capability = "extractor"
	CapabilityClassifier Capability = "classifier"
)

// SlotState represents the lifecycle state of an engine slot
type SlotState string

const (
	StateUninitialized SlotState = "uninitialized"
	StateReady         SlotState = "ready"
	StateUnavailable   SlotState = "unavailable"
)

// ExtractorBuilder constructs the entity extraction engine
type ExtractorBuilder func() (service.EntityExtractor, error)

// ClassifierBuilder constructs the topic classification engine
type ClassifierBuilder func() (service.TopicClassifier, error)

// slot holds one engine and its lifecycle state. While a construction
// attempt is in flight, building is true and done is the channel closed on
// its completion; callers arriving during the attempt wait on done and adopt
// its outcome instead of starting another build.
type slot struct {
	mu       sync.Mutex
	state    SlotState
	cause    error
	engine   interface{}
	building bool
	done     chan struct{}
}

// Registry holds the process-wide engine instances and performs lazy,
// idempotent construction. A Ready slot is never rebuilt; an Unavailable
// slot is re-attempted on the next EnsureReady call, since the failure may
// be transient. The two slots are fully independent.
type Registry struct {
	log             *zap.Logger
	buildExtractor  ExtractorBuilder
	buildClassifier ClassifierBuilder
	extractor       slot
	classifier      slot
}

// New creates a registry with both slots uninitialized
func New(buildExtractor ExtractorBuilder, buildClassifier ClassifierBuilder, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		log:             log,
		buildExtractor:  buildExtractor,
		buildClassifier: buildClassifier,
	}
	r.extractor.state = StateUninitialized
	r.classifier.state = StateUninitialized
	return r
}

// EnsureReady brings the capability's slot to a terminal state. It returns
// immediately for a Ready slot; otherwise it attempts construction once.
// Construction errors never escape: they become the Unavailable state.
func (r *Registry) EnsureReady(capability Capability) SlotState {
	switch capability {
	case CapabilityExtractor:
		return r.ensure(&r.extractor, capability, func() (interface{}, error) {
			return r.buildExtractor()
		})
	case CapabilityClassifier:
		return r.ensure(&r.classifier, capability, func() (interface{}, error) {
			return r.buildClassifier()
		})
	default:
		return StateUnavailable
	}
}

func (r *Registry) ensure(s *slot, capability Capability, build func() (interface{}, error)) SlotState {
	s.mu.Lock()
	if s.state == StateReady {
		s.mu.Unlock()
		return StateReady
	}
	if s.building {
		// An attempt is already running; adopt its outcome rather than
		// queueing another build. Only a call arriving after the attempt
		// completed may retry an Unavailable slot.
		done := s.done
		s.mu.Unlock()
		<-done
		s.mu.Lock()
		state := s.state
		s.mu.Unlock()
		return state
	}
	s.building = true
	s.done = make(chan struct{})
	s.mu.Unlock()

	engine, err := safeBuild(build)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.building = false
	close(s.done)

	if err != nil {
		s.state = StateUnavailable
		s.cause = err
		metrics.ModelBuildsTotal.WithLabelValues(string(capability), "failure").Inc()
		r.log.Error("engine construction failed",
			zap.String("capability", string(capability)),
			zap.Error(err))
		return StateUnavailable
	}

	s.engine = engine
	s.state = StateReady
	s.cause = nil
	metrics.ModelBuildsTotal.WithLabelValues(string(capability), "success").Inc()
	r.log.Info("engine constructed", zap.String("capability", string(capability)))
	return StateReady
}

// safeBuild converts a construction panic into an error so unexpected
// failures collapse to the Unavailable state like any other cause
func safeBuild(build func() (interface{}, error)) (engine interface{}, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("engine construction panicked: %v", rec)
		}
	}()
	return build()
}

// Extractor returns the extraction engine, or nil if the slot is not Ready
func (r *Registry) Extractor() service.EntityExtractor {
	r.extractor.mu.Lock()
	defer r.extractor.mu.Unlock()
	if r.extractor.state != StateReady {
		return nil
	}
	return r.extractor.engine.(service.EntityExtractor)
}

// Classifier returns the classification engine, or nil if the slot is not Ready
func (r *Registry) Classifier() service.TopicClassifier {
	r.classifier.mu.Lock()
	defer r.classifier.mu.Unlock()
	if r.classifier.state != StateReady {
		return nil
	}
	return r.classifier.engine.(service.TopicClassifier)
}

// Status reports a slot's current state and failure cause without
// triggering construction
func (r *Registry) Status(capability Capability) (SlotState, error) {
	var s *slot
	switch capability {
	case CapabilityExtractor:
		s = &r.extractor
	case CapabilityClassifier:
		s = &r.classifier
	default:
		return StateUnavailable, fmt.Errorf("unknown capability %q", capability)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.cause
}
