package domain

import "time"

// Category classifies a university by its funding sector.
// The set is closed: records with any other value are invalid.
type Category string

// Available categories.
const (
	// CategoryPublic is a public-sector (government-funded) institution.
	CategoryPublic Category = "public"

	// CategoryPrivate is a private-sector institution.
	CategoryPrivate Category = "private"

	// CategoryAll is the sentinel meaning "no category restriction" in
	// filter criteria. It is never a valid record category.
	CategoryAll Category = "all"
)

// IsValid returns true if the category is a real record category.
// The CategoryAll sentinel is not valid on a record.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPublic, CategoryPrivate:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Description returns a human-readable description of the category.
func (c Category) Description() string {
	switch c {
	case CategoryPublic:
		return "Public sector"
	case CategoryPrivate:
		return "Private sector"
	case CategoryAll:
		return "All categories"
	default:
		return "Unknown"
	}
}

// AllCategories returns the real record categories.
func AllCategories() []Category {
	return []Category{CategoryPublic, CategoryPrivate}
}

// AllCities is the sentinel meaning "no city restriction" in filter
// criteria. It is a distinct constant agreed between caller and filter,
// never a member of the known-cities set.
const AllCities = "All Cities"

// KnownCities returns the fixed set of cities records may carry.
func KnownCities() []string {
	return []string{
		"Abbottabad",
		"Bahawalpur",
		"Faisalabad",
		"Gujranwala",
		"Hyderabad",
		"Islamabad",
		"Jamshoro",
		"Karachi",
		"Lahore",
		"Multan",
		"Peshawar",
		"Quetta",
		"Rawalpindi",
		"Sialkot",
		"Topi",
	}
}

// University is one directory record in the browsable dataset.
// Only ID, Name, ShortName, City and Category are required; every other
// field is optional and may be absent or empty, so consumers must render
// them defensively.
type University struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`

	// Name is the full display name.
	Name string `json:"name"`

	// ShortName is the abbreviation, unique across the collection.
	ShortName string `json:"short_name"`

	// City is the campus city, a member of the known-cities set.
	City string `json:"city"`

	// Category is the funding sector.
	Category Category `json:"category"`

	// Address is the street address, if known.
	Address string `json:"address,omitempty"`

	// Phone is the contact phone number, if known.
	Phone string `json:"phone,omitempty"`

	// Email is the contact email address, if known.
	Email string `json:"email,omitempty"`

	// Website is the official website URL, if known.
	Website string `json:"website,omitempty"`

	// LogoURL points at the institution logo, if known.
	LogoURL string `json:"logo_url,omitempty"`

	// FoundedYear is the founding year, or 0 if unknown.
	FoundedYear int `json:"founded_year,omitempty"`

	// Ranking is the national HEC ranking, or 0 if unranked.
	Ranking int `json:"ranking,omitempty"`

	// UpdatedAt is when the record was last refreshed from the source.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// IsValid reports whether the record carries every field required for
// display. Invalid records are excluded from filtered results and counts
// rather than treated as errors.
func (u University) IsValid() bool {
	return u.Name != "" && u.ShortName != "" && u.City != "" && u.Category != ""
}

// DisplayName returns the name annotated with the short name when both
// are present, e.g. "Lahore University of Management Sciences (LUMS)".
func (u University) DisplayName() string {
	if u.ShortName == "" || u.ShortName == u.Name {
		return u.Name
	}
	return u.Name + " (" + u.ShortName + ")"
}
