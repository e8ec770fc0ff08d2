package memory

import (
	"context"
	"sort"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
	"github.com/eventloop-labs/event-booking-service/internal/repository"
)

type categoryRepository struct {
	store *Store
}

// NewCategoryRepository returns a store-backed category repository.
func NewCategoryRepository(store *Store) repository.CategoryRepository {
	return &categoryRepository{store: store}
}

func (r *categoryRepository) GetByID(_ context.Context, id string) (*domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.categories {
		if r.store.categories[i].ID == id {
			category := r.store.categories[i]
			return &category, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *categoryRepository) List(_ context.Context) ([]domain.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Category, len(r.store.categories))
	copy(result, r.store.categories)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}
