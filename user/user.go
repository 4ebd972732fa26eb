package user

import (
	"context"

	"github.com/google/uuid"
)

// User is the subset of the user document the evaluation pipeline touches.
// Registration, login and profile editing happen elsewhere; this package
// only reads identity and maintains the solved-problems set.
type User struct {
	UUID     uuid.UUID
	Username string
	Email    string

	// SolvedProblems holds ids of problems with at least one accepted
	// submission. A set: a problem appears at most once no matter how
	// many accepted submissions the user has for it.
	SolvedProblems []string
}

type Repo interface {
	Get(ctx context.Context, uuid uuid.UUID) (*User, error)
	Store(ctx context.Context, u User) error

	// AddSolvedProblem records that the user solved the problem. Must be
	// atomic and idempotent: concurrent calls with the same problem id
	// leave exactly one entry in the set.
	AddSolvedProblem(ctx context.Context, uuid uuid.UUID, problemId string) error
}
