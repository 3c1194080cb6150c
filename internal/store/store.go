// Package store provides an interface for product storage operations.
package store

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// Product represents a product entity in the store.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations.
type ProductStore interface {
	// FindAll returns all products in insertion order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*Product, error)

	// Create adds a new product to the collection, assigning it a fresh ID.
	Create(ctx context.Context, product Product) (*Product, error)

	// Update replaces the stored product identified by product.ID.
	// Returns ErrProductNotFound if no product exists with that ID.
	Update(ctx context.Context, product Product) (*Product, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id string) error
}
