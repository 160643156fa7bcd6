package domain

import "testing"

func ptr[T any](v T) *T { return &v }

func TestPageRequest_Offset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  PageRequest
		want int
	}{
		{"first page", PageRequest{Page: 1, Limit: 10}, 0},
		{"third page", PageRequest{Page: 3, Limit: 10}, 20},
		{"page zero clamps", PageRequest{Page: 0, Limit: 10}, 0},
		{"negative page clamps", PageRequest{Page: -4, Limit: 25}, 0},
		{"custom limit", PageRequest{Page: 2, Limit: 7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.req.Offset(); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPageRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (PageRequest{Page: 1, Limit: 1}).Validate(); err != nil {
		t.Errorf("limit 1 should be valid: %v", err)
	}
	if err := (PageRequest{Page: 1, Limit: 0}).Validate(); err == nil {
		t.Error("limit 0 should be rejected")
	}
	if err := (PageRequest{Page: 1, Limit: -5}).Validate(); err == nil {
		t.Error("negative limit should be rejected")
	}
}

func TestRecipeFilter_Normalize(t *testing.T) {
	t.Parallel()

	f := RecipeFilter{
		Title:     ptr("   "),
		Cuisine:   ptr("Italian"),
		RatingMin: ptr(4.0),
	}.Normalize()

	if f.Title != nil {
		t.Errorf("blank title should be dropped, got %q", *f.Title)
	}
	if f.Cuisine == nil || *f.Cuisine != "Italian" {
		t.Errorf("cuisine should be kept as given, got %v", f.Cuisine)
	}
	if f.RatingMin == nil || *f.RatingMin != 4.0 {
		t.Errorf("rating bound should be untouched, got %v", f.RatingMin)
	}
}

func TestRecipeFilter_IsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    RecipeFilter
		want bool
	}{
		{"zero value", RecipeFilter{}, true},
		{"blank text only", RecipeFilter{Title: ptr(""), Cuisine: ptr(" \t")}, true},
		{"title", RecipeFilter{Title: ptr("cake")}, false},
		{"calories max", RecipeFilter{CaloriesMax: ptr(0)}, false},
		{"total time min", RecipeFilter{TotalTimeMin: ptr(15)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.f.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
