package documents

import (
	"context"

	"github.com/procura/billing/internal/billing/shared"
)

var ErrNotFound = shared.ErrNotFound

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Document, error)
	Get(ctx context.Context, id int64) (Document, error)
	Create(ctx context.Context, doc Document) (Document, error)
	Update(ctx context.Context, id int64, mutate func(Document) (Document, error)) (Document, error)
	Delete(ctx context.Context, id int64) error
}

type memoryRepository struct {
	store *shared.MemoryStore[Document]
}

// NewMemoryRepository returns a process-local Repository. Item slices are
// copied on the way in and out.
func NewMemoryRepository() Repository {
	return &memoryRepository{store: shared.NewMemoryStore[Document]()}
}

func (r *memoryRepository) List(ctx context.Context, filter ListFilter) ([]Document, error) {
	docs := r.store.List(filter.match)
	for i := range docs {
		docs[i].Items = shared.CloneItems(docs[i].Items)
	}
	return docs, nil
}

func (r *memoryRepository) Get(ctx context.Context, id int64) (Document, error) {
	doc, err := r.store.Get(id)
	if err != nil {
		return Document{}, err
	}
	doc.Items = shared.CloneItems(doc.Items)
	return doc, nil
}

func (r *memoryRepository) Create(ctx context.Context, doc Document) (Document, error) {
	doc.Items = shared.CloneItems(doc.Items)
	created, err := r.store.Insert(func(id int64) (Document, error) {
		doc.ID = id
		return doc, nil
	})
	if err != nil {
		return Document{}, err
	}
	created.Items = shared.CloneItems(created.Items)
	return created, nil
}

func (r *memoryRepository) Update(ctx context.Context, id int64, mutate func(Document) (Document, error)) (Document, error) {
	updated, err := r.store.Update(id, func(current Document) (Document, error) {
		current.Items = shared.CloneItems(current.Items)
		return mutate(current)
	})
	if err != nil {
		return Document{}, err
	}
	updated.Items = shared.CloneItems(updated.Items)
	return updated, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(id)
}
