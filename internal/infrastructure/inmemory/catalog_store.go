// Package inmemory implements the catalog repository as a mutex-guarded
// in-process collection persisted wholesale through a table source.
package inmemory

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storebot/internal/domain"
	"github.com/jhoicas/storebot/internal/domain/entity"
	"github.com/jhoicas/storebot/internal/domain/repository"
	"github.com/jhoicas/storebot/internal/domain/table"
)

// ParseFunc turns raw table rows into products (injected to keep the
// parsing heuristic out of the storage layer).
type ParseFunc func([]table.Row) ([]entity.Product, error)

// CatalogStore keeps the products in source order (load order, then
// appended additions). A single coarse lock serializes every
// read-modify-write-persist cycle, so concurrent admin edits cannot lose
// updates.
type CatalogStore struct {
	mu       sync.RWMutex
	products []entity.Product
	index    map[string]int // code -> position in products

	source repository.TableSource
	parse  ParseFunc
}

var _ repository.ProductRepository = (*CatalogStore)(nil)

// NewCatalogStore builds an empty store over the given table source.
// Call Reload to populate it.
func NewCatalogStore(source repository.TableSource, parse ParseFunc) *CatalogStore {
	return &CatalogStore{
		index:  make(map[string]int),
		source: source,
		parse:  parse,
	}
}

// Reload re-reads the table source and replaces the catalog contents.
// A failed header detection leaves the store empty and returns the parse
// error; the bot keeps running with zero products.
func (s *CatalogStore) Reload() (int, error) {
	rows, err := s.source.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("read catalog table: %w", err)
	}
	products, err := s.parse(rows)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.index = make(map[string]int, len(products))
	for i, p := range products {
		s.index[p.Code] = i
	}
	return len(s.products), err
}

// List returns a copy of the catalog in source order.
func (s *CatalogStore) List() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of products.
func (s *CatalogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Page returns the slice [page*size, page*size+size) of the catalog,
// clamped to its bounds.
func (s *CatalogStore) Page(page, size int) []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := page * size
	if start < 0 || start >= len(s.products) {
		return nil
	}
	end := start + size
	if end > len(s.products) {
		end = len(s.products)
	}
	out := make([]entity.Product, end-start)
	copy(out, s.products[start:end])
	return out
}

// GetByCode looks a product up by its code.
func (s *CatalogStore) GetByCode(code string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := s.products[i]
	return &p, nil
}

// SetPrice updates a product's price and persists the catalog.
func (s *CatalogStore) SetPrice(code string, price decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[code]
	if !ok {
		return domain.ErrNotFound
	}
	s.products[i].Price = price
	return s.persistLocked()
}

// SetStock updates a product's stock and persists the catalog.
func (s *CatalogStore) SetStock(code string, stock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[code]
	if !ok {
		return domain.ErrNotFound
	}
	s.products[i].Stock = stock
	return s.persistLocked()
}

// Add appends a new product and persists the catalog. A duplicate code is
// rejected without touching the store.
func (s *CatalogStore) Add(product entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[product.Code]; ok {
		return domain.ErrDuplicate
	}
	s.products = append(s.products, product)
	s.index[product.Code] = len(s.products) - 1
	return s.persistLocked()
}

// persistLocked overwrites the table source with the current contents.
// Callers hold the write lock, so two racing edits serialize here.
func (s *CatalogStore) persistLocked() error {
	if err := s.source.WriteAll(s.products); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
