package clients

import (
	"context"

	"github.com/procura/billing/internal/billing/shared"
)

var ErrNotFound = shared.ErrNotFound

type Repository interface {
	List(ctx context.Context) ([]Client, error)
	Get(ctx context.Context, id int64) (Client, error)
	Create(ctx context.Context, client Client) (Client, error)
	Update(ctx context.Context, id int64, mutate func(Client) (Client, error)) (Client, error)
	Delete(ctx context.Context, id int64) error
}

type memoryRepository struct {
	store *shared.MemoryStore[Client]
}

// NewMemoryRepository returns a process-local Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{store: shared.NewMemoryStore[Client]()}
}

func (r *memoryRepository) List(ctx context.Context) ([]Client, error) {
	return r.store.List(nil), nil
}

func (r *memoryRepository) Get(ctx context.Context, id int64) (Client, error) {
	return r.store.Get(id)
}

func (r *memoryRepository) Create(ctx context.Context, client Client) (Client, error) {
	return r.store.Insert(func(id int64) (Client, error) {
		client.ID = id
		return client, nil
	})
}

func (r *memoryRepository) Update(ctx context.Context, id int64, mutate func(Client) (Client, error)) (Client, error) {
	return r.store.Update(id, mutate)
}

func (r *memoryRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(id)
}
