package user

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

type InMemRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]User
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		users: make(map[uuid.UUID]User),
	}
}

// Get implements Repo
func (r *InMemRepo) Get(ctx context.Context, uuid uuid.UUID) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[uuid]; ok {
		u.SolvedProblems = slices.Clone(u.SolvedProblems)
		return &u, nil
	}
	return nil, ErrUserNotFound()
}

// Store implements Repo
func (r *InMemRepo) Store(ctx context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.UUID] = u
	return nil
}

// AddSolvedProblem implements Repo. The mutex stands in for the atomic
// set ADD the DynamoDB repo relies on.
func (r *InMemRepo) AddSolvedProblem(ctx context.Context, uuid uuid.UUID, problemId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uuid]
	if !ok {
		return ErrUserNotFound()
	}
	if slices.Contains(u.SolvedProblems, problemId) {
		return nil
	}
	u.SolvedProblems = append(u.SolvedProblems, problemId)
	r.users[uuid] = u
	return nil
}
