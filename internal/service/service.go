// Package service implements the product business logic: list queries with
// filtering, search and pagination, category statistics, and validated
// collection mutations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abgdnv/products-api/internal/apperrors"
	"github.com/abgdnv/products-api/internal/store"
)

// DefaultPage and DefaultLimit apply when a list request omits pagination
// parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ProductService defines the operations exposed over the product collection.
// Read operations never mutate the collection; mutations validate their
// payload before touching the store.
type ProductService interface {
	// List returns one page of products matching the query filters.
	List(ctx context.Context, query ListQuery) (*ProductPage, error)

	// FindByID retrieves a single product. Returns a NotFound taxonomy error
	// if no product exists with the given ID.
	FindByID(ctx context.Context, id string) (*store.Product, error)

	// Stats counts the full collection by category. Products without a
	// category are counted under "Uncategorized".
	Stats(ctx context.Context) (map[string]int, error)

	// Create validates the payload and appends a new product with a
	// server-generated ID. Returns a Validation taxonomy error carrying
	// every field violation.
	Create(ctx context.Context, payload map[string]any) (*store.Product, error)

	// Update validates the payload and merges the supplied fields into the
	// stored product. Absent fields keep their prior value.
	Update(ctx context.Context, id string, payload map[string]any) (*store.Product, error)

	// DeleteByID removes a product. Deleting the same ID twice yields a
	// NotFound taxonomy error on the second attempt.
	DeleteByID(ctx context.Context, id string) error
}

// ListQuery holds the filter and pagination parameters for List.
// Page and Limit must already be validated as positive by the caller.
type ListQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// ProductPage is one page of list results. Total is the size of the filtered
// set before pagination.
type ProductPage struct {
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	Limit    int             `json:"limit"`
	Products []store.Product `json:"products"`
}

type service struct {
	repository store.ProductStore
}

// NewService creates a ProductService backed by the given store.
func NewService(repo store.ProductStore) ProductService {
	return &service{repository: repo}
}

// List filters by category (case-insensitive exact match), then by search
// term (case-insensitive substring on name), then paginates the result.
// An out-of-range page yields an empty slice, not an error.
func (s *service) List(ctx context.Context, query ListQuery) (*ProductPage, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	filtered := products
	if query.Category != "" {
		filtered = filterProducts(filtered, func(p store.Product) bool {
			return strings.EqualFold(p.Category, query.Category)
		})
	}
	if query.Search != "" {
		term := strings.ToLower(query.Search)
		filtered = filterProducts(filtered, func(p store.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term)
		})
	}

	start := (query.Page - 1) * query.Limit
	end := query.Page * query.Limit
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return &ProductPage{
		Total:    len(filtered),
		Page:     query.Page,
		Limit:    query.Limit,
		Products: filtered[start:end],
	}, nil
}

// FindByID retrieves a product by its ID.
func (s *service) FindByID(ctx context.Context, id string) (*store.Product, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundError(id, err)
	}
	return product, nil
}

// Stats groups the unfiltered collection by category and returns the counts.
func (s *service) Stats(ctx context.Context) (map[string]int, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	stats := make(map[string]int)
	for _, p := range products {
		category := p.Category
		if category == "" {
			category = "Uncategorized"
		}
		stats[category]++
	}
	return stats, nil
}

// Create validates the payload and inserts a new product.
func (s *service) Create(ctx context.Context, payload map[string]any) (*store.Product, error) {
	if fieldErrs := validateCreate(payload); len(fieldErrs) > 0 {
		return nil, apperrors.Validation("Product data validation failed.", fieldErrs...)
	}

	// validateCreate guarantees the type assertions below.
	product := store.Product{
		Name:        payload["name"].(string),
		Description: payload["description"].(string),
		Price:       payload["price"].(float64),
		Category:    payload["category"].(string),
		InStock:     payload["inStock"].(bool),
	}
	created, err := s.repository.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

// Update merges the supplied fields into the stored product. The path ID is
// authoritative: a body ID differing from it is rejected.
func (s *service) Update(ctx context.Context, id string, payload map[string]any) (*store.Product, error) {
	if fieldErrs := validateUpdate(payload); len(fieldErrs) > 0 {
		return nil, apperrors.Validation("Product update validation failed.", fieldErrs...)
	}

	existing, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundError(id, err)
	}

	if bodyID, ok := payload["id"].(string); ok && bodyID != "" && bodyID != id {
		return nil, apperrors.Validation("Cannot change product ID via the request body. Use the URL parameter.")
	}

	merged := *existing
	if v, ok := payload["name"]; ok {
		merged.Name = v.(string)
	}
	if v, ok := payload["description"]; ok {
		merged.Description = v.(string)
	}
	if v, ok := payload["price"]; ok {
		merged.Price = v.(float64)
	}
	if v, ok := payload["category"]; ok {
		merged.Category = v.(string)
	}
	if v, ok := payload["inStock"]; ok {
		merged.InStock = v.(bool)
	}

	updated, err := s.repository.Update(ctx, merged)
	if err != nil {
		return nil, notFoundError(id, err)
	}
	return updated, nil
}

// DeleteByID removes a product by its ID.
func (s *service) DeleteByID(ctx context.Context, id string) error {
	if err := s.repository.DeleteByID(ctx, id); err != nil {
		return notFoundError(id, err)
	}
	return nil
}

// notFoundError translates the store sentinel into a taxonomy error; any
// other failure is passed through wrapped for the generic 500 path.
func notFoundError(id string, err error) error {
	if errors.Is(err, store.ErrProductNotFound) {
		return apperrors.NotFound(fmt.Sprintf("Product with ID %s not found.", id))
	}
	return fmt.Errorf("product store failure for ID %s: %w", id, err)
}

// filterProducts returns the products satisfying keep, preserving order.
func filterProducts(products []store.Product, keep func(store.Product) bool) []store.Product {
	filtered := make([]store.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
