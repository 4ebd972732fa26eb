package problem

import "context"

// TestCase is one (input, expected output) pair. Explanation is only
// present on visible cases shown in the problem statement.
type TestCase struct {
	Input       string
	Output      string
	Explanation string
}

// Problem is the subset of the problem document the evaluation pipeline
// reads. Visible cases back the interactive "run" feedback; hidden cases
// back scored submissions. Order within each slice is significant: the
// index pairs a case with its judged result.
type Problem struct {
	ID         string
	Title      string
	Difficulty string

	VisibleTestCases []TestCase
	HiddenTestCases  []TestCase
}

// Repo is the read-only problem source.
type Repo interface {
	Get(ctx context.Context, id string) (*Problem, error)
	Store(ctx context.Context, p Problem) error
}
