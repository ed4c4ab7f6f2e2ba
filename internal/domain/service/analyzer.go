package service

import "github.com/pretamane/bing-crawling-api/internal/domain/entity"

// EntityExtractor defines the interface for named-entity recognition
type EntityExtractor interface {
	// Extract recognizes allow-listed entities in text, in document order
	Extract(text string) *entity.NERResult
}

// TopicClassifier defines the interface for topic classification
type TopicClassifier interface {
	// Classify predicts the topic of text with a confidence in [0,1]
	Classify(text string) *entity.ClassificationResult
}
