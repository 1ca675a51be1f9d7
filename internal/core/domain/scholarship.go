package domain

import "time"

// ScholarshipLevel classifies a scholarship by study level.
type ScholarshipLevel string

// Available scholarship levels.
const (
	// LevelUndergraduate covers bachelor programmes.
	LevelUndergraduate ScholarshipLevel = "undergraduate"

	// LevelGraduate covers master programmes.
	LevelGraduate ScholarshipLevel = "graduate"

	// LevelPostgraduate covers doctoral and post-doctoral programmes.
	LevelPostgraduate ScholarshipLevel = "postgraduate"

	// LevelAll is the sentinel meaning "no level restriction" in filter
	// criteria. It is never a valid record level.
	LevelAll ScholarshipLevel = "all"
)

// IsValid returns true if the level is a real record level.
func (l ScholarshipLevel) IsValid() bool {
	switch l {
	case LevelUndergraduate, LevelGraduate, LevelPostgraduate:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l ScholarshipLevel) String() string {
	return string(l)
}

// AllScholarshipLevels returns the real record levels.
func AllScholarshipLevels() []ScholarshipLevel {
	return []ScholarshipLevel{LevelUndergraduate, LevelGraduate, LevelPostgraduate}
}

// Scholarship is one directory record in the browsable scholarship
// dataset. Title, Provider and Level are required; the rest is optional.
type Scholarship struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`

	// Title is the scholarship display title.
	Title string `json:"title"`

	// Provider is the funding organisation.
	Provider string `json:"provider"`

	// Level is the study level the scholarship covers.
	Level ScholarshipLevel `json:"level"`

	// City is the host city, if restricted to one.
	City string `json:"city,omitempty"`

	// Amount is a free-form description of the award, if known.
	Amount string `json:"amount,omitempty"`

	// Deadline is the application deadline in ISO date form, if known.
	Deadline string `json:"deadline,omitempty"`

	// URL points at the application page, if known.
	URL string `json:"url,omitempty"`

	// Description is a short free-form summary, if known.
	Description string `json:"description,omitempty"`

	// UpdatedAt is when the record was last refreshed from the source.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// IsValid reports whether the record carries every field required for
// display. Invalid records are excluded, not rejected.
func (s Scholarship) IsValid() bool {
	return s.Title != "" && s.Provider != "" && s.Level != ""
}
