package models

import "time"

const (
	EntryTypeBowelMovement = "bowel_movement"
	EntryTypeMeal          = "meal"
	EntryTypeSymptom       = "symptom"
	EntryTypeMedication    = "medication"
)

// EntryTypes lists every recognized entry type. The set is closed; anything
// else coming over the wire is stored as-is but never matched by type
// filters.
var EntryTypes = []string{
	EntryTypeBowelMovement,
	EntryTypeMeal,
	EntryTypeSymptom,
	EntryTypeMedication,
}

func IsKnownEntryType(entryType string) bool {
	for _, known := range EntryTypes {
		if entryType == known {
			return true
		}
	}
	return false
}

// LogEntry is one recorded health event. It is deliberately a single
// superset record: a meal may carry a bristol type, a symptom may list
// foods. The store never rejects semantically odd combinations.
type LogEntry struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Type           string    `gorm:"not null;index" json:"type"`
	Timestamp      time.Time `gorm:"not null;index" json:"timestamp"`
	BristolType    *int      `gorm:"index" json:"bristolType,omitempty"`
	PainLevel      *int      `gorm:"index" json:"painLevel,omitempty"`
	StressLevel    *int      `json:"stressLevel,omitempty"`
	Symptoms       []string  `gorm:"serializer:json" json:"symptoms,omitempty"`
	Foods          []string  `gorm:"serializer:json" json:"foods,omitempty"`
	TriggerFoods   []string  `gorm:"serializer:json" json:"triggerFoods,omitempty"`
	Medication     string    `json:"medication,omitempty"`
	MedicationDose string    `json:"medicationDose,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	AIGenerated    bool      `gorm:"not null;default:false" json:"aiGenerated"`
	RawTranscript  string    `json:"rawTranscript,omitempty"`
	// The store owns both stamps; gorm's automatic time tracking is off
	// so an import can carry original values through unchanged.
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false" json:"updatedAt"`
}

// SymptomVocabulary is the closed set of symptom tags the capture UI offers.
// Stored entries are not validated against it; it exists for collaborators
// that need to render or translate tags.
var SymptomVocabulary = []string{
	"bloating",
	"cramping",
	"gas",
	"nausea",
	"urgency",
	"incomplete_evacuation",
	"heartburn",
	"fatigue",
	"headache",
}

// TriggerCategories is the closed set of known trigger-food categories.
var TriggerCategories = []string{
	"dairy",
	"gluten",
	"caffeine",
	"alcohol",
	"spicy",
	"fried",
	"high_fodmap",
	"artificial_sweetener",
}
