package importer

import (
	"encoding/json"

	"github.com/heartmarshall/recipe-catalog/internal/domain"
)

// Source document keys.
const (
	keyCuisine     = "cuisine"
	keyTitle       = "title"
	keyRating      = "rating"
	keyPrepTime    = "prep_time"
	keyCookTime    = "cook_time"
	keyTotalTime   = "total_time"
	keyDescription = "description"
	keyNutrients   = "nutrients"
	keyServes      = "serves"
	keyCalories    = "calories"
)

// MapItem converts one raw item into a recipe ready for insertion.
// Missing or unreadable fields become nil; nutrients is always set.
func MapItem(item Item) domain.Recipe {
	nutrients := EncodeNutrients(item[keyNutrients])

	r := domain.Recipe{
		Cuisine:     stringField(item[keyCuisine]),
		Title:       stringField(item[keyTitle]),
		Description: stringField(item[keyDescription]),
		Serves:      stringField(item[keyServes]),
		Nutrients:   &nutrients,
	}

	if v, ok := ParseDecimal(item[keyRating]); ok {
		r.Rating = &v
	}
	r.PrepTime = wholeOrNil(item[keyPrepTime])
	r.CookTime = wholeOrNil(item[keyCookTime])
	r.TotalTime = wholeOrNil(item[keyTotalTime])

	if v, ok := ExtractCalories(item[keyNutrients]); ok {
		r.Calories = &v
	}

	return r
}

// MapItems maps every item in order.
func MapItems(items []Item) []domain.Recipe {
	out := make([]domain.Recipe, len(items))
	for i, item := range items {
		out[i] = MapItem(item)
	}
	return out
}

func wholeOrNil(raw json.RawMessage) *int {
	v, ok := ParseWhole(raw)
	if !ok {
		return nil
	}
	return &v
}
