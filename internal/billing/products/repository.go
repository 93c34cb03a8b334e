package products

import (
	"context"

	"github.com/procura/billing/internal/billing/shared"
)

var ErrNotFound = shared.ErrNotFound

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Delete(ctx context.Context, id int64) error
}

type memoryRepository struct {
	store *shared.MemoryStore[Product]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{store: shared.NewMemoryStore[Product]()}
}

func (r *memoryRepository) List(ctx context.Context) ([]Product, error) {
	return r.store.List(nil), nil
}

func (r *memoryRepository) Create(ctx context.Context, product Product) (Product, error) {
	return r.store.Insert(func(id int64) (Product, error) {
		product.ID = id
		return product, nil
	})
}

func (r *memoryRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(id)
}
