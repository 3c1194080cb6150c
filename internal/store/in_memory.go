package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// inMemory implements ProductStore backed by an ordered slice.
// A slice rather than a map because list pagination depends on
// stable insertion order.
type inMemory struct {
	mu       sync.RWMutex
	products []Product
}

// NewInMemoryStore creates a ProductStore pre-populated with the given seed
// products. Seed entries without an ID get one assigned.
func NewInMemoryStore(seed ...Product) ProductStore {
	s := &inMemory{
		products: make([]Product, 0, len(seed)),
	}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		s.products = append(s.products, p)
	}
	return s
}

// FindAll returns a copy of the collection in insertion order.
func (s *inMemory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list, nil
}

// FindByID retrieves a product by its ID.
func (s *inMemory) FindByID(_ context.Context, id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

// Create assigns a fresh unique ID and appends the product.
func (s *inMemory) Create(_ context.Context, product Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = uuid.NewString()
	s.products = append(s.products, product)
	return &product, nil
}

// Update replaces the stored product with the same ID, keeping its position.
func (s *inMemory) Update(_ context.Context, product Product) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == product.ID {
			s.products[i] = product
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

// DeleteByID removes a product by its ID. An unchanged collection length
// after the removal attempt means the product was not found.
func (s *inMemory) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	initial := len(s.products)
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	if len(s.products) == initial {
		return ErrProductNotFound
	}
	return nil
}
