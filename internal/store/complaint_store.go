package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/spec-kit/hall-complaints/internal/config"
	"github.com/spec-kit/hall-complaints/internal/domain"
)

// ErrNotFound is returned when no complaint matches the given id. It is an
// expected condition, not a backend fault; callers render a not-found state.
var ErrNotFound = errors.New("complaint not found")

// CreateInput carries the validated fields for a new complaint.
type CreateInput struct {
	RoomNumber  string
	Category    domain.ComplaintCategory
	Description string
}

// ComplaintStore owns the canonical complaint collection. All reads and
// writes pass through it; callers only ever receive copies.
type ComplaintStore interface {
	List(ctx context.Context) ([]domain.Complaint, error)
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	Create(ctx context.Context, input CreateInput) (*domain.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error)
	Delete(ctx context.Context, id string) error
}

// memoryStore keeps complaints in process memory for the process lifetime.
// Ids come from a monotonic counter, the only collision-free strategy here.
type memoryStore struct {
	mu         sync.Mutex
	complaints []domain.Complaint
	counter    int64
	latency    time.Duration
	now        func() time.Time
}

// NewMemoryStore instantiates the in-memory store. The configured latency is
// observed on every operation to model a real backend round trip.
func NewMemoryStore(cfg config.StoreConfig) ComplaintStore {
	return &memoryStore{
		counter: cfg.CounterStart,
		latency: cfg.Latency(),
		now:     time.Now,
	}
}

func (s *memoryStore) List(ctx context.Context) ([]domain.Complaint, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Complaint, len(s.complaints))
	copy(result, s.complaints)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *memoryStore) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.complaints {
		if s.complaints[i].ID == id {
			c := s.complaints[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) Create(ctx context.Context, input CreateInput) (*domain.Complaint, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	complaint := domain.Complaint{
		ID:          fmt.Sprintf("TICKET-%d", s.counter),
		RoomNumber:  input.RoomNumber,
		Category:    input.Category,
		Description: input.Description,
		Status:      domain.StatusReported,
		CreatedAt:   s.now(),
	}
	s.complaints = append(s.complaints, complaint)

	stored := complaint
	return &stored, nil
}

func (s *memoryStore) UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.complaints {
		if s.complaints[i].ID == id {
			s.complaints[i].Status = status
			c := s.complaints[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.complaints {
		if s.complaints[i].ID == id {
			s.complaints = append(s.complaints[:i], s.complaints[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// wait models backend latency without blocking past context cancellation.
func (s *memoryStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
