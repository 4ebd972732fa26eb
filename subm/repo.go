package subm

import (
	"context"

	"github.com/google/uuid"
)

// Repo is the persistence boundary for submissions.
type Repo interface {
	Store(ctx context.Context, subm Submission) error
	Get(ctx context.Context, uuid uuid.UUID) (*Submission, error)
	ListForProblem(ctx context.Context, userUuid uuid.UUID, problemId string) ([]Submission, error)
}
