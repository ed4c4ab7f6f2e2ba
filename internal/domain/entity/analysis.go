package entity

// EntityLabel represents a semantic category assigned to a recognized span
type EntityLabel string

const (
	LabelPerson  EntityLabel = "PERSON"
	LabelOrg     EntityLabel = "ORG"
	LabelGPE     EntityLabel = "GPE"
	LabelLoc     EntityLabel = "LOC"
	LabelProduct EntityLabel = "PRODUCT"
	LabelEvent   EntityLabel = "EVENT"
	LabelDate    EntityLabel = "DATE"
	LabelMoney   EntityLabel = "MONEY"
)

// allowedLabels is the closed set of labels permitted in service output.
// Engine-native labels outside this set are dropped to reduce noise.
var allowedLabels = map[EntityLabel]bool{
	LabelPerson:  true,
	LabelOrg:     true,
	LabelGPE:     true,
	LabelLoc:     true,
	LabelProduct: true,
	LabelEvent:   true,
	LabelDate:    true,
	LabelMoney:   true,
}

// IsAllowedLabel reports whether the label belongs to the output allow-list
func IsAllowedLabel(label EntityLabel) bool {
	return allowedLabels[label]
}

// Entity represents a recognized span of the input text
type Entity struct {
	Text  string      `json:"text"`
	Label EntityLabel `json:"label"`
}

// NERResult holds recognized entities in document order
type NERResult struct {
	Entities []Entity `json:"entities"`
}

// NewNERResult creates an NERResult that serializes an empty sequence as []
func NewNERResult(entities []Entity) *NERResult {
	if entities == nil {
		entities = []Entity{}
	}
	return &NERResult{Entities: entities}
}

// ClassificationResult holds the predicted topic and its posterior probability
type ClassificationResult struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// TrainingExample is one labeled text in the classifier's training corpus
type TrainingExample struct {
	Text  string `yaml:"text"`
	Label string `yaml:"label"`
}
