package domain

import "strings"

// FilterCriteria captures the user's current search and filter
// parameters. It is a transient value object created fresh per
// interaction; the zero value means "no restriction" on every axis.
type FilterCriteria struct {
	// Query is the free-text search query. An empty query matches all
	// records; a whitespace-only query is a literal substring match.
	Query string

	// Category restricts universities to a funding sector.
	// CategoryAll (or empty) means no restriction.
	Category Category

	// City restricts records to a campus city, matched exactly and
	// case-sensitively. AllCities (or empty) means no restriction.
	City string

	// Level restricts scholarships to a study level.
	// LevelAll (or empty) means no restriction.
	Level ScholarshipLevel
}

// DefaultFilterCriteria returns criteria with no restriction on any axis,
// using the explicit sentinels.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Query:    "",
		Category: CategoryAll,
		City:     AllCities,
		Level:    LevelAll,
	}
}

// FilterUniversities returns the subsequence of records matching all
// criteria, preserving input order. Invalid records are always excluded
// regardless of criteria. Pure function: no side effects, the input
// slice is never modified.
func FilterUniversities(records []University, criteria FilterCriteria) []University {
	query := strings.ToLower(criteria.Query)

	matched := make([]University, 0, len(records))
	for _, r := range records {
		if !r.IsValid() {
			continue
		}
		if !matchesQuery(query, r.Name, r.ShortName, r.City) {
			continue
		}
		if restrictsCategory(criteria.Category) && r.Category != criteria.Category {
			continue
		}
		if restrictsCity(criteria.City) && r.City != criteria.City {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// FilterScholarships returns the subsequence of records matching all
// criteria, preserving input order. Same contract as FilterUniversities.
func FilterScholarships(records []Scholarship, criteria FilterCriteria) []Scholarship {
	query := strings.ToLower(criteria.Query)

	matched := make([]Scholarship, 0, len(records))
	for _, r := range records {
		if !r.IsValid() {
			continue
		}
		if !matchesQuery(query, r.Title, r.Provider, r.City) {
			continue
		}
		if restrictsLevel(criteria.Level) && r.Level != criteria.Level {
			continue
		}
		if restrictsCity(criteria.City) && r.City != criteria.City {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// matchesQuery reports whether the lowercased query is a substring of at
// least one of the given fields, compared case-insensitively. An empty
// query matches everything.
func matchesQuery(lowerQuery string, fields ...string) bool {
	if lowerQuery == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}

// restrictsCategory reports whether the criterion restricts the category
// axis. Both the CategoryAll sentinel and the zero value mean no
// restriction.
func restrictsCategory(c Category) bool {
	return c != "" && c != CategoryAll
}

// restrictsCity reports whether the criterion restricts the city axis.
func restrictsCity(city string) bool {
	return city != "" && city != AllCities
}

// restrictsLevel reports whether the criterion restricts the level axis.
func restrictsLevel(l ScholarshipLevel) bool {
	return l != "" && l != LevelAll
}
