package rest

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/recipe-catalog/internal/domain"
)

// Empty query values count as absent.

func queryInt(q url.Values, key string, def int) (int, error) {
	v, err := optionalInt(q, key)
	if err != nil || v == nil {
		return def, err
	}
	return *v, nil
}

func optionalInt(q url.Values, key string) (*int, error) {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil, domain.NewValidationError(key, "must be an integer")
	}
	v := int(n)
	return &v, nil
}

func optionalFloat(q url.Values, key string) (*float64, error) {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return nil, nil
	}
	if strings.ContainsRune(s, '_') {
		return nil, domain.NewValidationError(key, "must be a number")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, domain.NewValidationError(key, "must be a number")
	}
	return &f, nil
}

func optionalString(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	s := q.Get(key)
	return &s
}

func parsePage(q url.Values) (domain.PageRequest, error) {
	page, err := queryInt(q, "page", domain.DefaultPage)
	if err != nil {
		return domain.PageRequest{}, err
	}
	limit, err := queryInt(q, "limit", domain.DefaultLimit)
	if err != nil {
		return domain.PageRequest{}, err
	}
	return domain.PageRequest{Page: page, Limit: limit}, nil
}

func parseFilter(q url.Values) (domain.RecipeFilter, error) {
	f := domain.RecipeFilter{
		Title:   optionalString(q, "title"),
		Cuisine: optionalString(q, "cuisine"),
	}

	var err error
	floats := []struct {
		key string
		dst **float64
	}{
		{"ratingMin", &f.RatingMin},
		{"ratingMax", &f.RatingMax},
	}
	for _, p := range floats {
		if *p.dst, err = optionalFloat(q, p.key); err != nil {
			return domain.RecipeFilter{}, err
		}
	}

	ints := []struct {
		key string
		dst **int
	}{
		{"totalTimeMin", &f.TotalTimeMin},
		{"totalTimeMax", &f.TotalTimeMax},
		{"caloriesMin", &f.CaloriesMin},
		{"caloriesMax", &f.CaloriesMax},
	}
	for _, p := range ints {
		if *p.dst, err = optionalInt(q, p.key); err != nil {
			return domain.RecipeFilter{}, err
		}
	}

	return f, nil
}
