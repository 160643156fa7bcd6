package importer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/recipe-catalog/internal/domain"
)

//go:generate moq -out recipe_store_mock_test.go -pkg importer . recipeStore
//go:generate moq -out tx_manager_mock_test.go -pkg importer . txManager

const twoRecipes = `[
	{"title":"A","rating":4.5,"nutrients":{"calories":"200 kcal"}},
	{"title":"B","rating":"NaN","nutrients":{}}
]`

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func okStore(deleted int64) *recipeStoreMock {
	return &recipeStoreMock{
		DeleteAllFunc: func(ctx context.Context) (int64, error) {
			return deleted, nil
		},
		BulkInsertFunc: func(ctx context.Context, recipes []domain.Recipe, batchSize int) (int, error) {
			return len(recipes), nil
		},
	}
}

func newTestService(store *recipeStoreMock, tx *txManagerMock, m *Metrics) *Service {
	return NewService(slog.Default(), store, tx, m, 100)
}

func TestImport_ReplacesStore(t *testing.T) {
	t.Parallel()

	store := okStore(7)
	tx := defaultTxMock()
	m := NewMetrics(prometheus.NewRegistry())
	svc := newTestService(store, tx, m)

	res, err := svc.Import(context.Background(), writeDoc(t, twoRecipes))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Items)
	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, int64(7), res.Deleted)
	assert.Equal(t, 1, res.NullCalories)
	assert.Positive(t, res.Duration)

	require.Len(t, tx.RunInTxCalls(), 1)
	require.Len(t, store.DeleteAllCalls(), 1)
	require.Len(t, store.BulkInsertCalls(), 1)

	call := store.BulkInsertCalls()[0]
	assert.Equal(t, 100, call.BatchSize)
	require.Len(t, call.Recipes, 2)

	a, b := call.Recipes[0], call.Recipes[1]
	assert.Equal(t, "A", *a.Title)
	assert.Equal(t, 4.5, *a.Rating)
	assert.Equal(t, 200, *a.Calories)
	assert.Equal(t, `{"calories":"200 kcal"}`, *a.Nutrients)

	assert.Equal(t, "B", *b.Title)
	assert.Nil(t, b.Rating)
	assert.Nil(t, b.Calories)
	assert.Equal(t, "{}", *b.Nutrients)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(outcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.rows))
}

func TestImport_DeleteRunsBeforeInsertInsideTx(t *testing.T) {
	t.Parallel()

	var order []string
	inTx := false

	store := &recipeStoreMock{
		DeleteAllFunc: func(ctx context.Context) (int64, error) {
			assert.True(t, inTx, "delete outside transaction")
			order = append(order, "delete")
			return 0, nil
		},
		BulkInsertFunc: func(ctx context.Context, recipes []domain.Recipe, batchSize int) (int, error) {
			assert.True(t, inTx, "insert outside transaction")
			order = append(order, "insert")
			return len(recipes), nil
		},
	}
	tx := &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			inTx = true
			defer func() { inTx = false }()
			return fn(ctx)
		},
	}

	_, err := newTestService(store, tx, nil).Import(context.Background(), writeDoc(t, twoRecipes))
	require.NoError(t, err)

	assert.Equal(t, []string{"delete", "insert"}, order)
}

func TestImport_EmptyDocumentClearsStore(t *testing.T) {
	t.Parallel()

	store := okStore(3)
	svc := newTestService(store, defaultTxMock(), nil)

	res, err := svc.Import(context.Background(), writeDoc(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Items)
	assert.Equal(t, int64(3), res.Deleted)
	assert.Len(t, store.DeleteAllCalls(), 1)
}

func TestImport_ParseFailureLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			wantErr: os.ErrNotExist,
		},
		{
			name:    "unsupported root",
			path:    func(t *testing.T) string { return writeDoc(t, `"just text"`) },
			wantErr: ErrUnsupportedRoot,
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeDoc(t, `[{"title":`) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := okStore(0)
			tx := defaultTxMock()
			m := NewMetrics(prometheus.NewRegistry())
			svc := newTestService(store, tx, m)

			_, err := svc.Import(context.Background(), tt.path(t))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			assert.Empty(t, tx.RunInTxCalls())
			assert.Empty(t, store.DeleteAllCalls())
			assert.Empty(t, store.BulkInsertCalls())
			assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(outcomeFailure)))
		})
	}
}

func TestImport_InsertFailurePropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("insert failed")
	store := okStore(5)
	store.BulkInsertFunc = func(ctx context.Context, recipes []domain.Recipe, batchSize int) (int, error) {
		return 0, boom
	}
	m := NewMetrics(prometheus.NewRegistry())
	svc := newTestService(store, defaultTxMock(), m)

	res, err := svc.Import(context.Background(), writeDoc(t, twoRecipes))

	require.ErrorIs(t, err, boom)
	assert.Zero(t, res.Inserted)
	assert.Zero(t, res.Deleted)
	assert.Equal(t, 2, res.Items)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(outcomeFailure)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.rows))
}

func TestImport_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := okStore(0)
	_, err := newTestService(store, defaultTxMock(), nil).Import(ctx, writeDoc(t, twoRecipes))

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.DeleteAllCalls())
}

func TestDryRun_DoesNotTouchStore(t *testing.T) {
	t.Parallel()

	store := okStore(0)
	tx := defaultTxMock()
	svc := newTestService(store, tx, nil)

	res, err := svc.DryRun(context.Background(), writeDoc(t, twoRecipes))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Items)
	assert.Equal(t, 1, res.NullCalories)
	assert.Zero(t, res.Inserted)
	assert.Empty(t, tx.RunInTxCalls())
	assert.Empty(t, store.DeleteAllCalls())
}

func TestImportBestEffort_SwallowsFailure(t *testing.T) {
	t.Parallel()

	store := okStore(0)
	svc := newTestService(store, defaultTxMock(), nil)

	assert.NotPanics(t, func() {
		svc.ImportBestEffort(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	})
	assert.Empty(t, store.DeleteAllCalls())
}
