package repositories_test

import (
	"context"
	"testing"

	"toko/internal/models"
	"toko/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryProductRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewInMemoryProductRepository()

	p := &models.Product{Name: "Keyboard", Stock: 3}
	require.NoError(t, repo.Create(ctx, p))
	assert.NotEmpty(t, p.ID, "ID is generated when empty")
	assert.Error(t, repo.Create(ctx, &models.Product{ID: p.ID, Name: "dup"}))

	p.Stock = 2
	require.NoError(t, repo.Update(ctx, p))
	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock)

	got.Stock = 99
	again, _ := repo.GetByID(ctx, p.ID)
	assert.Equal(t, 2, again.Stock, "returned products are copies")

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, p), repositories.ErrNotFound)
}

func TestInMemoryProductRepository_GetAllSortedByID(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewInMemoryProductRepository()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Create(ctx, &models.Product{ID: id, Name: id}))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "c", all[2].ID)
}

func TestInMemoryOrderRepository_CreateAndQuery(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewInMemoryOrderRepository()

	first := &models.Order{CustomerName: "A", Items: []models.OrderItem{{Quantity: 1}, {Quantity: 2}}}
	second := &models.Order{CustomerName: "B"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	got.Items[0].Quantity = 42
	again, _ := repo.GetByID(ctx, first.ID)
	assert.Equal(t, 1, again.Items[0].Quantity, "items are not shared with callers")

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
