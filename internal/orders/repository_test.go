package orders

import (
	"context"
	"sync"

	"github.com/innnova/pending/internal/models/errs"
	"github.com/innnova/pending/internal/models/order"
)

// Lock in case of t.Parallel call.
type mockRepository struct {
	items map[string]order.Order
	mu    sync.RWMutex
}

func newMockRepository() *mockRepository {
	return &mockRepository{items: make(map[string]order.Order)}
}

var _ Repository = (*mockRepository)(nil)

func (m *mockRepository) GetOrder(_ context.Context, id string) (*order.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.items[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &o, nil
}

func (m *mockRepository) SaveOrder(_ context.Context, o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *o
	// creator_mail stays what it was at creation.
	if prev, ok := m.items[o.ID]; ok {
		stored.CreatorMail = prev.CreatorMail
	}
	m.items[o.ID] = stored
	return nil
}

func (m *mockRepository) UpdateStatus(_ context.Context, id string, status order.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.items[id]
	if !ok {
		return errs.ErrNotFound
	}
	o.Status = status
	m.items[id] = o
	return nil
}

func (m *mockRepository) DeleteOrder(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *mockRepository) GetOrdersByCreator(_ context.Context, email string, onlyActive bool) ([]*order.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]*order.Order, 0)
	for _, o := range m.items {
		if o.CreatorMail != email {
			continue
		}
		if onlyActive && o.Status != order.Active {
			continue
		}
		o := o
		res = append(res, &o)
	}
	return res, nil
}
