package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_InMemory_Create_AssignsUniqueIDs(t *testing.T) {
	// given
	s := NewInMemoryStore()
	ctx := context.Background()

	// when
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		created, err := s.Create(ctx, Product{Name: "Pen", Description: "Blue pen", Price: 2, Category: "Office", InStock: true})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.False(t, seen[created.ID], "IDs must be unique")
		seen[created.ID] = true
	}
}

func Test_InMemory_FindAll_PreservesInsertionOrder(t *testing.T) {
	// given
	s := NewInMemoryStore()
	ctx := context.Background()
	names := []string{"first", "second", "third", "fourth"}
	for _, name := range names {
		_, err := s.Create(ctx, Product{Name: name, Price: 1, Category: "c", InStock: true})
		require.NoError(t, err)
	}

	// when
	list, err := s.FindAll(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, name := range names {
		assert.Equal(t, name, list[i].Name)
	}
}

func Test_InMemory_FindAll_ReturnsCopy(t *testing.T) {
	// given
	s := NewInMemoryStore(Product{ID: "p1", Name: "Pen"})
	ctx := context.Background()

	// when
	list, err := s.FindAll(ctx)
	require.NoError(t, err)
	list[0].Name = "mutated"

	// then
	stored, err := s.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Pen", stored.Name, "mutating the returned slice must not affect the store")
}

func Test_InMemory_FindByID(t *testing.T) {
	// given
	s := NewInMemoryStore(Product{ID: "p1", Name: "Pen"})
	ctx := context.Background()

	// when / then
	found, err := s.FindByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Pen", found.Name)

	_, err = s.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func Test_InMemory_Update(t *testing.T) {
	// given
	s := NewInMemoryStore(
		Product{ID: "p1", Name: "Pen", Price: 2},
		Product{ID: "p2", Name: "Mug", Price: 8},
	)
	ctx := context.Background()

	// when
	updated, err := s.Update(ctx, Product{ID: "p1", Name: "Fancy Pen", Price: 3})

	// then
	require.NoError(t, err)
	assert.Equal(t, "Fancy Pen", updated.Name)

	list, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p1", list[0].ID, "update keeps the product's position")

	_, err = s.Update(ctx, Product{ID: "ghost"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func Test_InMemory_DeleteByID_SecondDeleteFails(t *testing.T) {
	// given
	s := NewInMemoryStore(Product{ID: "p1", Name: "Pen"})
	ctx := context.Background()

	// when / then
	require.NoError(t, s.DeleteByID(ctx, "p1"))
	assert.ErrorIs(t, s.DeleteByID(ctx, "p1"), ErrProductNotFound)

	list, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func Test_DefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	assert.Len(t, catalog, 7)
	for _, p := range catalog {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
		assert.Greater(t, p.Price, 0.0)
	}
}
