package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"recipehub-admin-api/internal/model"
	"recipehub-admin-api/pkg/reqid"
)

// MemoryRequestRepository implements RequestRepository with a single
// in-process table. One RWMutex guards the table; Submit allocates the next
// identifier and inserts inside the same write-lock critical section, which
// is what makes concurrent submissions safe.
type MemoryRequestRepository struct {
	mu       sync.RWMutex
	requests []*model.Request
	index    map[string]int
}

// NewMemoryRequestRepository creates an empty in-memory request table.
func NewMemoryRequestRepository() *MemoryRequestRepository {
	return &MemoryRequestRepository{
		index: make(map[string]int),
	}
}

// Verify interface compliance
var _ RequestRepository = (*MemoryRequestRepository)(nil)

// Submit assigns the next free identifier to req and inserts it.
func (r *MemoryRequestRepository) Submit(ctx context.Context, req *model.Request) (*model.Request, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing := make([]string, 0, len(r.requests))
	for _, stored := range r.requests {
		existing = append(existing, stored.ID)
	}

	stored := req.Clone()
	stored.ID = reqid.Next(existing)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	if stored.StateChangedAt.IsZero() {
		stored.StateChangedAt = stored.CreatedAt
	}

	r.index[stored.ID] = len(r.requests)
	r.requests = append(r.requests, stored)

	return stored.Clone(), nil
}

// Get returns a copy of the request with the given identifier.
func (r *MemoryRequestRepository) Get(ctx context.Context, id string) (*model.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("request %s: %w", id, ErrNotFound)
	}
	return r.requests[i].Clone(), nil
}

// List returns copies of all requests in insertion order.
func (r *MemoryRequestRepository) List(ctx context.Context) ([]model.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Request, 0, len(r.requests))
	for _, stored := range r.requests {
		out = append(out, *stored.Clone())
	}
	return out, nil
}

// Transition applies mutate to the stored request under the write lock.
// mutate runs against a working copy; the table is only updated when it
// succeeds, so a failed transition leaves the stored request untouched.
func (r *MemoryRequestRepository) Transition(ctx context.Context, id string, mutate func(*model.Request) error) (*model.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("request %s: %w", id, ErrNotFound)
	}

	working := r.requests[i].Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}

	// Identifier and creation time are immutable; a mutator cannot change
	// them even by accident.
	working.ID = r.requests[i].ID
	working.CreatedAt = r.requests[i].CreatedAt

	r.requests[i] = working
	return working.Clone(), nil
}

// CountByState returns the number of requests per workflow state.
func (r *MemoryRequestRepository) CountByState(ctx context.Context) (map[model.State]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[model.State]int)
	for _, stored := range r.requests {
		counts[stored.State]++
	}
	return counts, nil
}
