package recipe

import (
	"context"
	"github.com/heartmarshall/recipe-catalog/internal/domain"
	"sync"
)

var _ recipeRepo = &recipeRepoMock{}

type recipeRepoMock struct {
	CountFunc func(ctx context.Context, f domain.RecipeFilter) (int64, error)
	FindFunc  func(ctx context.Context, f domain.RecipeFilter, page domain.PageRequest) ([]domain.Recipe, error)

	calls struct {
		Count []struct {
			Ctx context.Context
			F   domain.RecipeFilter
		}
		Find []struct {
			Ctx  context.Context
			F    domain.RecipeFilter
			Page domain.PageRequest
		}
	}
	lockCount sync.RWMutex
	lockFind  sync.RWMutex
}

func (mock *recipeRepoMock) Count(ctx context.Context, f domain.RecipeFilter) (int64, error) {
	if mock.CountFunc == nil {
		panic("recipeRepoMock.CountFunc: method is nil but recipeRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.RecipeFilter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *recipeRepoMock) CountCalls() []struct {
	Ctx context.Context
	F   domain.RecipeFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *recipeRepoMock) Find(ctx context.Context, f domain.RecipeFilter, page domain.PageRequest) ([]domain.Recipe, error) {
	if mock.FindFunc == nil {
		panic("recipeRepoMock.FindFunc: method is nil but recipeRepo.Find was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.RecipeFilter
		Page domain.PageRequest
	}{Ctx: ctx, F: f, Page: page}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, f, page)
}

func (mock *recipeRepoMock) FindCalls() []struct {
	Ctx  context.Context
	F    domain.RecipeFilter
	Page domain.PageRequest
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}
