package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/recipe-catalog/internal/domain"
	"github.com/heartmarshall/recipe-catalog/internal/service/recipe"
)

type recipeService interface {
	List(ctx context.Context, page domain.PageRequest) (recipe.Page, error)
	Search(ctx context.Context, f domain.RecipeFilter, page domain.PageRequest) (recipe.Page, error)
}

// RecipeHandler serves the recipe listing and search endpoints.
type RecipeHandler struct {
	recipes recipeService
	log     *slog.Logger
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(recipes recipeService, log *slog.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, log: log}
}

// PageResponse is the JSON envelope of List and Search.
type PageResponse struct {
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Total int64            `json:"total"`
	Data  []RecipeResponse `json:"data"`
}

// RecipeResponse is one recipe. Absent values serialize as null.
type RecipeResponse struct {
	ID          int64          `json:"id"`
	Cuisine     *string        `json:"cuisine"`
	Title       *string        `json:"title"`
	Rating      *float64       `json:"rating"`
	PrepTime    *int           `json:"prepTime"`
	CookTime    *int           `json:"cookTime"`
	TotalTime   *int           `json:"totalTime"`
	Description *string        `json:"description"`
	Nutrients   map[string]any `json:"nutrients"`
	Serves      *string        `json:"serves"`
	Calories    *int           `json:"calories"`
}

// List handles GET /api/recipes.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.recipes.List(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(res))
}

// Search handles GET /api/recipes/search.
func (h *RecipeHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := parsePage(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	filter, err := parseFilter(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.recipes.Search(r.Context(), filter, page)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(res))
}

func toPageResponse(p recipe.Page) PageResponse {
	data := make([]RecipeResponse, len(p.Data))
	for i, v := range p.Data {
		data[i] = RecipeResponse{
			ID:          v.ID,
			Cuisine:     v.Cuisine,
			Title:       v.Title,
			Rating:      v.Rating,
			PrepTime:    v.PrepTime,
			CookTime:    v.CookTime,
			TotalTime:   v.TotalTime,
			Description: v.Description,
			Nutrients:   v.Nutrients,
			Serves:      v.Serves,
			Calories:    v.Calories,
		}
	}
	return PageResponse{
		Page:  p.Page,
		Limit: p.Limit,
		Total: p.Total,
		Data:  data,
	}
}
