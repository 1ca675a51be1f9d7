package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		expected bool
	}{
		{"public", CategoryPublic, true},
		{"private", CategoryPrivate, true},
		{"all sentinel", CategoryAll, true},
		{"empty", Category(""), false},
		{"unknown", Category("semi-government"), false},
		{"wrong case", Category("Public"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.category.IsValid())
		})
	}
}

func TestCategory_Description(t *testing.T) {
	assert.NotEmpty(t, CategoryPublic.Description())
	assert.NotEmpty(t, CategoryPrivate.Description())
	assert.NotEqual(t, CategoryPublic.Description(), CategoryPrivate.Description())
}

func TestUniversity_IsValid(t *testing.T) {
	valid := University{
		ID:        "u1",
		Name:      "University of the Punjab",
		ShortName: "PU",
		City:      "Lahore",
		Category:  CategoryPublic,
	}

	tests := []struct {
		name     string
		mutate   func(*University)
		expected bool
	}{
		{"complete record", func(u *University) {}, true},
		{"missing name", func(u *University) { u.Name = "" }, false},
		{"missing short name", func(u *University) { u.ShortName = "" }, false},
		{"missing city", func(u *University) { u.City = "" }, false},
		{"missing category", func(u *University) { u.Category = "" }, false},
		{"optional fields empty", func(u *University) {
			u.Address = ""
			u.Phone = ""
			u.Website = ""
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := valid
			tt.mutate(&u)
			assert.Equal(t, tt.expected, u.IsValid())
		})
	}
}

func TestUniversity_DisplayName(t *testing.T) {
	u := University{Name: "Lahore University of Management Sciences", ShortName: "LUMS"}
	assert.Equal(t, "Lahore University of Management Sciences (LUMS)", u.DisplayName())

	u.ShortName = ""
	assert.Equal(t, "Lahore University of Management Sciences", u.DisplayName())
}

func TestKnownCities(t *testing.T) {
	cities := KnownCities()

	assert.NotEmpty(t, cities)
	assert.Contains(t, cities, "Islamabad")
	assert.Contains(t, cities, "Lahore")
	assert.Contains(t, cities, "Karachi")
	assert.NotContains(t, cities, AllCities)
}
