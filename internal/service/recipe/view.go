package recipe

import (
	"encoding/json"
	"strings"

	"github.com/heartmarshall/recipe-catalog/internal/domain"
)

// View is a recipe as returned to API clients.
type View struct {
	ID          int64
	Cuisine     *string
	Title       *string
	Rating      *float64
	PrepTime    *int
	CookTime    *int
	TotalTime   *int
	Description *string
	Nutrients   map[string]any
	Serves      *string
	Calories    *int
}

func newView(r domain.Recipe) View {
	return View{
		ID:          r.ID,
		Cuisine:     r.Cuisine,
		Title:       r.Title,
		Rating:      r.Rating,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		TotalTime:   r.TotalTime,
		Description: r.Description,
		Nutrients:   DecodeNutrients(r.Nutrients),
		Serves:      r.Serves,
		Calories:    r.Calories,
	}
}

// DecodeNutrients parses stored nutrients text into a JSON object.
// Numbers decode as json.Number. Anything that is not an object gives nil.
func DecodeNutrients(text *string) map[string]any {
	if text == nil {
		return nil
	}
	s := strings.TrimSpace(*text)
	if s == "" || s == "null" {
		return nil
	}

	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil
	}
	if dec.More() {
		return nil
	}
	return out
}

