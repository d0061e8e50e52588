package order

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryCreateAndGet(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &Order{ID: "order_1", Amount: 100, Status: StatusCreated}))

	o, err := repo.GetByID(ctx, "order_1")
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, int64(100), o.Amount)
}

func TestRepositoryGetMissingReturnsNil(t *testing.T) {
	repo := NewRepository()

	o, err := repo.GetByID(context.Background(), "order_missing")
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestRepositoryConcurrentWrites(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := "order_" + string(rune('a'+n%26)) + string(rune('a'+n/26))
			_ = repo.Create(ctx, &Order{ID: id, Amount: int64(n)})
			_, _ = repo.GetByID(ctx, id)
		}(i)
	}
	wg.Wait()
}
