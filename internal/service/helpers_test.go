package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/hr-contracts/internal/model"
)

// memoryStore keeps contracts in a map so a whole negotiation can be
// replayed without a database.
type memoryStore struct {
	mu      sync.Mutex
	items   map[uuid.UUID]model.Contract
	saveErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: make(map[uuid.UUID]model.Contract)}
}

func (m *memoryStore) FindByID(_ context.Context, id uuid.UUID) (*model.Contract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &c, nil
}

func (m *memoryStore) Save(_ context.Context, c *model.Contract) (*model.Contract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	stored := *c
	now := time.Now().UTC()
	if stored.IsNew() {
		stored.ID = uuid.New()
		stored.CreatedAt = now
	} else if _, ok := m.items[stored.ID]; !ok {
		return nil, model.ErrNotFound
	}
	stored.UpdatedAt = now
	m.items[stored.ID] = stored
	out := stored
	return &out, nil
}

func (m *memoryStore) List(_ context.Context, filter model.ContractFilter) ([]model.Contract, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Contract
	for _, c := range m.items {
		if filter.State != "" && c.State != filter.State {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *memoryStore) CountByState(ctx context.Context, filter model.ContractFilter) (map[model.ContractState]int64, error) {
	list, _ := m.List(ctx, filter)
	counts := make(map[model.ContractState]int64)
	for _, c := range list {
		counts[c.State]++
	}
	return counts, nil
}

func (m *memoryStore) get(id uuid.UUID) model.Contract {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[id]
}

func (m *memoryStore) put(c model.Contract) model.Contract {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.items[c.ID] = c
	return c
}

func (m *memoryStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func day(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func terms(hours int) model.SalaryInfo {
	return model.SalaryInfo{HoursPerWeek: hours, VacationDays: 25, SalaryScale: 7, SalaryStep: 2}
}
