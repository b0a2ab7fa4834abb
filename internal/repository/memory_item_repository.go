package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/svcbase/item-service/internal/model"
)

// MemoryItemRepository keeps all items in a process-lifetime map. A single
// RWMutex serializes mutations; identifiers are allocated from a counter that
// only moves forward, so a deleted item's id is never handed out again.
type MemoryItemRepository struct {
	mu     sync.RWMutex
	items  map[int64]model.Item
	order  []int64
	nextID int64
}

func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{
		items:  make(map[int64]model.Item),
		nextID: 1,
	}
}

func (r *MemoryItemRepository) Insert(ctx context.Context, name string, description *string) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := model.Item{
		ID:          r.nextID,
		Name:        name,
		Description: copyDescription(description),
		CreatedAt:   time.Now().UTC(),
	}
	r.nextID++
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)

	return item, nil
}

func (r *MemoryItemRepository) GetByID(ctx context.Context, id int64) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return model.Item{}, fmt.Errorf("%w: %d", model.ErrItemNotFound, id)
	}
	return item, nil
}

// List returns the items in insertion order. The slice is a snapshot; later
// mutations do not show through.
func (r *MemoryItemRepository) List(ctx context.Context) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, 0, len(r.items))
	for _, id := range r.order {
		if item, ok := r.items[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// Update replaces name and description in place. ID and CreatedAt are
// immutable once assigned.
func (r *MemoryItemRepository) Update(ctx context.Context, id int64, name string, description *string) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return model.Item{}, fmt.Errorf("%w: %d", model.ErrItemNotFound, id)
	}
	item.Name = name
	item.Description = copyDescription(description)
	r.items[id] = item

	return item, nil
}

func (r *MemoryItemRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %d", model.ErrItemNotFound, id)
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryItemRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func (r *MemoryItemRepository) Close() error {
	return nil
}

// copyDescription detaches the stored value from the caller's pointer.
func copyDescription(description *string) *string {
	if description == nil {
		return nil
	}
	d := *description
	return &d
}
