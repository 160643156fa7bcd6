package domain

import "strings"

// Recipe is one imported catalog item. Every field except ID is optional:
// values that were absent or unparseable at import time are nil.
type Recipe struct {
	ID          int64
	Cuisine     *string
	Title       *string
	Rating      *float64
	PrepTime    *int
	CookTime    *int
	TotalTime   *int
	Description *string
	// Nutrients is the serialized nutrients document as stored.
	Nutrients *string
	Serves    *string
	// Calories is derived from the nutrients "calories" entry at import time.
	Calories *int
}

// RecipeFilter holds the optional search predicates. A nil field imposes
// no constraint. Bounds are inclusive and never match a null column.
type RecipeFilter struct {
	// Title is a case-insensitive substring match.
	Title *string
	// Cuisine is a case-insensitive exact match.
	Cuisine *string

	RatingMin    *float64
	RatingMax    *float64
	TotalTimeMin *int
	TotalTimeMax *int
	CaloriesMin  *int
	CaloriesMax  *int
}

// Normalize drops blank text filters.
func (f RecipeFilter) Normalize() RecipeFilter {
	f.Title = nonBlank(f.Title)
	f.Cuisine = nonBlank(f.Cuisine)
	return f
}

// IsEmpty reports whether the filter has no effective predicate.
func (f RecipeFilter) IsEmpty() bool {
	n := f.Normalize()
	return n.Title == nil && n.Cuisine == nil &&
		n.RatingMin == nil && n.RatingMax == nil &&
		n.TotalTimeMin == nil && n.TotalTimeMax == nil &&
		n.CaloriesMin == nil && n.CaloriesMax == nil
}

func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageRequest is a 1-based page window. Page values below 1 address the
// first page; the raw value is still echoed back to callers.
type PageRequest struct {
	Page  int
	Limit int
}

// Validate checks the window size.
func (p PageRequest) Validate() error {
	if p.Limit < 1 {
		return NewValidationError("limit", "must be at least 1")
	}
	return nil
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return max(p.Page-1, 0) * p.Limit
}
