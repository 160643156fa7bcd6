package recipe

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/recipe-catalog/internal/domain"
)

const (
	table = "recipes"

	colID          = "id"
	colCuisine     = "cuisine"
	colTitle       = "title"
	colRating      = "rating"
	colPrepTime    = "prep_time"
	colCookTime    = "cook_time"
	colTotalTime   = "total_time"
	colDescription = "description"
	colNutrients   = "nutrients"
	colServes      = "serves"
	colCalories    = "calories"
)

var (
	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	insertColumns = []string{
		colCuisine, colTitle, colRating, colPrepTime, colCookTime,
		colTotalTime, colDescription, colNutrients, colServes, colCalories,
	}
	selectColumns = append([]string{colID}, insertColumns...)

	// Highest rated first; unrated recipes sink to the end. id keeps pages stable.
	orderBy = []string{colRating + " DESC NULLS LAST", colID + " ASC"}
)

// buildPredicate folds every supplied filter into a single conjunction.
// An empty result means no WHERE clause at all.
func buildPredicate(f domain.RecipeFilter) squirrel.And {
	f = f.Normalize()

	var pred squirrel.And

	if f.Title != nil {
		pred = append(pred, squirrel.ILike{colTitle: "%" + escapeLike(*f.Title) + "%"})
	}
	if f.Cuisine != nil {
		pred = append(pred, squirrel.Eq{"LOWER(" + colCuisine + ")": strings.ToLower(*f.Cuisine)})
	}

	pred = appendRange(pred, colRating, f.RatingMin, f.RatingMax)
	pred = appendRange(pred, colTotalTime, f.TotalTimeMin, f.TotalTimeMax)
	pred = appendRange(pred, colCalories, f.CaloriesMin, f.CaloriesMax)

	return pred
}

// appendRange adds inclusive bounds on col. A null column never satisfies
// a bound, so any supplied bound also requires col IS NOT NULL.
func appendRange[T int | float64](pred squirrel.And, col string, lo, hi *T) squirrel.And {
	if lo == nil && hi == nil {
		return pred
	}

	pred = append(pred, squirrel.NotEq{col: nil})
	if lo != nil {
		pred = append(pred, squirrel.GtOrEq{col: *lo})
	}
	if hi != nil {
		pred = append(pred, squirrel.LtOrEq{col: *hi})
	}
	return pred
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
