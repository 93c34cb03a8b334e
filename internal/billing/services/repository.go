package services

import (
	"context"

	"github.com/procura/billing/internal/billing/shared"
)

var ErrNotFound = shared.ErrNotFound

type Repository interface {
	List(ctx context.Context) ([]Offering, error)
	Create(ctx context.Context, offering Offering) (Offering, error)
	Delete(ctx context.Context, id int64) error
}

type memoryRepository struct {
	store *shared.MemoryStore[Offering]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{store: shared.NewMemoryStore[Offering]()}
}

func (r *memoryRepository) List(ctx context.Context) ([]Offering, error) {
	return r.store.List(nil), nil
}

func (r *memoryRepository) Create(ctx context.Context, offering Offering) (Offering, error) {
	return r.store.Insert(func(id int64) (Offering, error) {
		offering.ID = id
		return offering, nil
	})
}

func (r *memoryRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(id)
}
