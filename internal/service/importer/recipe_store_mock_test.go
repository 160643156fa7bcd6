package importer

import (
	"context"
	"github.com/heartmarshall/recipe-catalog/internal/domain"
	"sync"
)

var _ recipeStore = &recipeStoreMock{}

type recipeStoreMock struct {
	BulkInsertFunc func(ctx context.Context, recipes []domain.Recipe, batchSize int) (int, error)
	DeleteAllFunc  func(ctx context.Context) (int64, error)

	calls struct {
		BulkInsert []struct {
			Ctx       context.Context
			Recipes   []domain.Recipe
			BatchSize int
		}
		DeleteAll []struct {
			Ctx context.Context
		}
	}
	lockBulkInsert sync.RWMutex
	lockDeleteAll  sync.RWMutex
}

func (mock *recipeStoreMock) BulkInsert(ctx context.Context, recipes []domain.Recipe, batchSize int) (int, error) {
	if mock.BulkInsertFunc == nil {
		panic("recipeStoreMock.BulkInsertFunc: method is nil but recipeStore.BulkInsert was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Recipes   []domain.Recipe
		BatchSize int
	}{Ctx: ctx, Recipes: recipes, BatchSize: batchSize}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, callInfo)
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, recipes, batchSize)
}

func (mock *recipeStoreMock) BulkInsertCalls() []struct {
	Ctx       context.Context
	Recipes   []domain.Recipe
	BatchSize int
} {
	mock.lockBulkInsert.RLock()
	calls := mock.calls.BulkInsert
	mock.lockBulkInsert.RUnlock()
	return calls
}

func (mock *recipeStoreMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("recipeStoreMock.DeleteAllFunc: method is nil but recipeStore.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *recipeStoreMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}
