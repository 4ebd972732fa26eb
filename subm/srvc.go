package subm

import (
	"context"
	"log/slog"

	"github.com/codearena/backend/judge0"
	"github.com/codearena/backend/problem"
	"github.com/codearena/backend/user"
	"github.com/google/uuid"
)

// JudgeClient is the part of the judge adapter the orchestrator drives.
// Satisfied by *judge0.Client; tests substitute a scripted fake.
type JudgeClient interface {
	SubmitBatch(ctx context.Context, reqs []judge0.SubmissionRequest) ([]string, error)
	AwaitResults(ctx context.Context, tokens []string) ([]judge0.SubmissionResult, error)
}

// SubmissionSrvc drives the evaluation pipeline: it loads a problem's test
// cases, dispatches them to the judge, aggregates per-case outcomes into a
// single verdict and persists the submission.
type SubmissionSrvc struct {
	logger *slog.Logger

	repo     Repo
	users    user.Repo
	problems problem.Repo
	judge    JudgeClient
}

func NewSubmissionSrvc(repo Repo, users user.Repo, problems problem.Repo, judge JudgeClient) *SubmissionSrvc {
	return &SubmissionSrvc{
		logger:   slog.Default().With("module", "subm"),
		repo:     repo,
		users:    users,
		problems: problems,
		judge:    judge,
	}
}

func (s *SubmissionSrvc) GetSubm(ctx context.Context, submUuid uuid.UUID) (*Submission, error) {
	return s.repo.Get(ctx, submUuid)
}

func (s *SubmissionSrvc) ListForProblem(ctx context.Context, userUuid uuid.UUID, problemId string) ([]Submission, error) {
	return s.repo.ListForProblem(ctx, userUuid, problemId)
}
