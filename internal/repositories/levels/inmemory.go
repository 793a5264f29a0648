package levels

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
)

// InMemoryRepository implements Repository in process memory
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	ttl   time.Duration
	store map[string]*Record
}

// NewInMemory creates an in-memory repository. A nil clock uses the real
// clock and a zero ttl uses DefaultTTL.
func NewInMemory(c clock.Clock, ttl time.Duration) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InMemoryRepository{
		clock: c,
		ttl:   ttl,
		store: make(map[string]*Record),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a copy of the record
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgument(errTTLInvalid)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	record := *input.Record
	now := r.clock.Now()
	record.CreatedAt = now
	record.ExpiresAt = now.Add(ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := record
	r.store[record.ID] = &stored

	return &CreateOutput{Record: &record}, nil
}

// Get returns a copy of the record
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFound(errNotFound).WithMeta("level_id", input.ID)
	}
	if r.clock.Now().After(record.ExpiresAt) {
		delete(r.store, input.ID)
		return nil, errors.NotFound("level has expired").WithMeta("level_id", input.ID)
	}

	out := *record
	return &GetOutput{Record: &out}, nil
}

// Delete removes a record
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFound(errNotFound).WithMeta("level_id", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{Deleted: true}, nil
}
