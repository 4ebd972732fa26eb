package problem

import (
	"context"
	"sync"
)

type InMemRepo struct {
	mu       sync.RWMutex
	problems map[string]Problem
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		problems: make(map[string]Problem),
	}
}

// Get implements Repo
func (r *InMemRepo) Get(ctx context.Context, id string) (*Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.problems[id]; ok {
		return &p, nil
	}
	return nil, ErrProblemNotFound()
}

// Store implements Repo
func (r *InMemRepo) Store(ctx context.Context, p Problem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.problems[p.ID] = p
	return nil
}
