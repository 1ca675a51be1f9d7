package domain

import "time"

// RecordType identifies which directory collection a record belongs to.
type RecordType string

// Available record types.
const (
	// RecordTypeUniversity is a university directory record.
	RecordTypeUniversity RecordType = "university"

	// RecordTypeScholarship is a scholarship directory record.
	RecordTypeScholarship RecordType = "scholarship"
)

// IsValid returns true if the record type is recognised.
func (t RecordType) IsValid() bool {
	switch t {
	case RecordTypeUniversity, RecordTypeScholarship:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t RecordType) String() string {
	return string(t)
}

// Favourite marks a directory record as saved by the user.
type Favourite struct {
	// ID is the unique identifier for the favourite itself.
	ID string

	// RecordID is the identifier of the favourited directory record.
	RecordID string

	// Type identifies which collection RecordID belongs to.
	Type RecordType

	// CreatedAt is when the record was favourited.
	CreatedAt time.Time
}
