package rest

import (
	"context"
	"github.com/heartmarshall/recipe-catalog/internal/domain"
	"github.com/heartmarshall/recipe-catalog/internal/service/recipe"
	"sync"
)

var _ recipeService = &recipeServiceMock{}

type recipeServiceMock struct {
	ListFunc   func(ctx context.Context, page domain.PageRequest) (recipe.Page, error)
	SearchFunc func(ctx context.Context, f domain.RecipeFilter, page domain.PageRequest) (recipe.Page, error)

	calls struct {
		List []struct {
			Ctx  context.Context
			Page domain.PageRequest
		}
		Search []struct {
			Ctx  context.Context
			F    domain.RecipeFilter
			Page domain.PageRequest
		}
	}
	lockList   sync.RWMutex
	lockSearch sync.RWMutex
}

func (mock *recipeServiceMock) List(ctx context.Context, page domain.PageRequest) (recipe.Page, error) {
	if mock.ListFunc == nil {
		panic("recipeServiceMock.ListFunc: method is nil but recipeService.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.PageRequest
	}{Ctx: ctx, Page: page}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, page)
}

func (mock *recipeServiceMock) ListCalls() []struct {
	Ctx  context.Context
	Page domain.PageRequest
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *recipeServiceMock) Search(ctx context.Context, f domain.RecipeFilter, page domain.PageRequest) (recipe.Page, error) {
	if mock.SearchFunc == nil {
		panic("recipeServiceMock.SearchFunc: method is nil but recipeService.Search was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.RecipeFilter
		Page domain.PageRequest
	}{Ctx: ctx, F: f, Page: page}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, f, page)
}

func (mock *recipeServiceMock) SearchCalls() []struct {
	Ctx  context.Context
	F    domain.RecipeFilter
	Page domain.PageRequest
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
