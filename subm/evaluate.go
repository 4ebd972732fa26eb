package subm

import (
	"context"
	"time"

	"github.com/codearena/backend/judge0"
	"github.com/codearena/backend/logger"
	"github.com/codearena/backend/problem"
	"github.com/google/uuid"
)

// Submit evaluates code against the problem's hidden test cases and persists
// the verdict. The submission row is written twice: once as pending before
// the judge is contacted and once with the terminal state. Judge outages and
// timeouts leave the row pending and surface as request-level errors.
func (s *SubmissionSrvc) Submit(ctx context.Context, userUuid uuid.UUID, problemId string,
	code string, language string) (*Submission, error) {
	log := logger.FromContext(ctx)

	if code == "" {
		return nil, ErrMissingField("code")
	}
	if language == "" {
		return nil, ErrMissingField("language")
	}

	// reject unsupported languages before creating a row or touching
	// the network
	langId, err := judge0.ResolveLanguage(language)
	if err != nil {
		return nil, err
	}

	prob, err := s.problems.Get(ctx, problemId)
	if err != nil {
		return nil, err
	}

	submUuid, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	subm := Submission{
		UUID:           submUuid,
		UserUUID:       userUuid,
		ProblemID:      problemId,
		Code:           code,
		Language:       language,
		Status:         StatusPending,
		TestCasesTotal: len(prob.HiddenTestCases),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	// the pending row is created before the batch call so that a judge
	// outage leaves a visible row for diagnostics
	if err := s.repo.Store(ctx, subm); err != nil {
		return nil, err
	}

	results, err := s.judgeTestCases(ctx, code, langId, prob.HiddenTestCases)
	if err != nil {
		return nil, err
	}

	v := aggregate(results)
	subm.Status = v.status
	subm.TestCasesPassed = v.passed
	subm.Runtime = v.runtime
	subm.MemoryKB = v.memoryKb
	subm.ErrorMessage = v.errorMessage
	subm.UpdatedAt = time.Now()
	if err := s.repo.Store(ctx, subm); err != nil {
		return nil, err
	}

	if subm.Status == StatusAccepted {
		if err := s.users.AddSolvedProblem(ctx, userUuid, problemId); err != nil {
			// the verdict is already persisted; don't turn a judged
			// submission into a server error over bookkeeping
			log.Error("failed to record solved problem",
				"user", userUuid, "problem", problemId, "error", err)
		}
	}

	s.logger.Info("submission evaluated",
		"subm", subm.UUID, "problem", problemId, "status", subm.Status,
		"passed", subm.TestCasesPassed, "total", subm.TestCasesTotal)

	return &subm, nil
}

// RunResult is one visible test case's judged outcome, returned raw for
// inline display in the editor.
type RunResult struct {
	StatusID          int
	StatusDescription string
	Passed            bool
	Time              float64
	MemoryKB          int
	Stdout            *string
	Stderr            *string

	Input          string
	ExpectedOutput string
}

// Run evaluates code against the problem's visible test cases and returns
// the per-case results. No submission row is created and the solved-problems
// set is never touched.
func (s *SubmissionSrvc) Run(ctx context.Context, userUuid uuid.UUID, problemId string,
	code string, language string) ([]RunResult, error) {
	if code == "" {
		return nil, ErrMissingField("code")
	}
	if language == "" {
		return nil, ErrMissingField("language")
	}

	langId, err := judge0.ResolveLanguage(language)
	if err != nil {
		return nil, err
	}

	prob, err := s.problems.Get(ctx, problemId)
	if err != nil {
		return nil, err
	}

	results, err := s.judgeTestCases(ctx, code, langId, prob.VisibleTestCases)
	if err != nil {
		return nil, err
	}

	runResults := make([]RunResult, len(results))
	for i, res := range results {
		runResults[i] = RunResult{
			StatusID:          res.Status.ID,
			StatusDescription: res.Status.Description,
			Passed:            res.Status.IsAccepted(),
			Time:              res.TimeSeconds(),
			MemoryKB:          res.Memory,
			Stdout:            res.Stdout,
			Stderr:            res.Stderr,
			Input:             prob.VisibleTestCases[i].Input,
			ExpectedOutput:    prob.VisibleTestCases[i].Output,
		}
	}
	return runResults, nil
}

// judgeTestCases builds one judge request per test case in order, submits
// the batch and waits for all results. The result slice is index-matched to
// the test case slice.
func (s *SubmissionSrvc) judgeTestCases(ctx context.Context, code string, langId int,
	testCases []problem.TestCase) ([]judge0.SubmissionResult, error) {
	reqs := make([]judge0.SubmissionRequest, len(testCases))
	for i, tc := range testCases {
		reqs[i] = judge0.SubmissionRequest{
			SourceCode:     code,
			LanguageID:     langId,
			Stdin:          tc.Input,
			ExpectedOutput: tc.Output,
		}
	}

	tokens, err := s.judge.SubmitBatch(ctx, reqs)
	if err != nil {
		return nil, err
	}
	return s.judge.AwaitResults(ctx, tokens)
}

type finalVerdict struct {
	status       Status
	passed       int
	runtime      float64
	memoryKb     int
	errorMessage *string
}

// aggregate folds per-case results in test case order into one verdict.
// The fold short-circuits on the first non-accepted result: later cases
// contribute nothing to the pass count, runtime or memory even when the
// judge computed them. Status 4 maps to wrong, every other failure to error.
func aggregate(results []judge0.SubmissionResult) finalVerdict {
	v := finalVerdict{status: StatusAccepted}
	for _, res := range results {
		if !res.Status.IsAccepted() {
			if res.Status.ID == judge0.StatusWrongAnswer {
				v.status = StatusWrong
			} else {
				v.status = StatusError
			}
			msg := res.Status.Description
			if msg == "" && res.Stderr != nil {
				msg = *res.Stderr
			}
			v.errorMessage = &msg
			return v
		}
		v.passed++
		v.runtime += res.TimeSeconds()
		if res.Memory > v.memoryKb {
			v.memoryKb = res.Memory
		}
	}
	return v
}
