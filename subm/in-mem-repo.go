package subm

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type InMemRepo struct {
	mu    sync.RWMutex
	subms map[uuid.UUID]Submission
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		subms: make(map[uuid.UUID]Submission),
	}
}

// Store implements Repo
func (r *InMemRepo) Store(ctx context.Context, subm Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subms[subm.UUID] = subm
	return nil
}

// Get implements Repo
func (r *InMemRepo) Get(ctx context.Context, uuid uuid.UUID) (*Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if subm, ok := r.subms[uuid]; ok {
		return &subm, nil
	}
	return nil, ErrSubmNotFound()
}

// ListForProblem implements Repo
func (r *InMemRepo) ListForProblem(ctx context.Context, userUuid uuid.UUID, problemId string) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subms := make([]Submission, 0)
	for _, subm := range r.subms {
		if subm.UserUUID == userUuid && subm.ProblemID == problemId {
			subms = append(subms, subm)
		}
	}
	sort.Slice(subms, func(i, j int) bool {
		return subms[i].CreatedAt.After(subms[j].CreatedAt)
	})
	return subms, nil
}

// Len reports the number of stored submissions.
func (r *InMemRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subms)
}
