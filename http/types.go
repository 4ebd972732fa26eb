package http

import (
	"time"

	"github.com/codearena/backend/subm"
)

type SubmissionResponse struct {
	Uuid      string `json:"uuid"`
	ProblemId string `json:"problem_id"`
	Language  string `json:"language"`

	Status          string  `json:"status"`
	TestCasesPassed int     `json:"test_cases_passed"`
	TestCasesTotal  int     `json:"test_cases_total"`
	Runtime         float64 `json:"runtime"`
	MemoryKb        int     `json:"memory_kb"`
	ErrorMessage    *string `json:"error_message,omitempty"`

	CreatedAt string `json:"created_at"`
}

func mapSubm(s subm.Submission) SubmissionResponse {
	return SubmissionResponse{
		Uuid:            s.UUID.String(),
		ProblemId:       s.ProblemID,
		Language:        s.Language,
		Status:          string(s.Status),
		TestCasesPassed: s.TestCasesPassed,
		TestCasesTotal:  s.TestCasesTotal,
		Runtime:         s.Runtime,
		MemoryKb:        s.MemoryKB,
		ErrorMessage:    s.ErrorMessage,
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type RunResultResponse struct {
	StatusId          int     `json:"status_id"`
	StatusDescription string  `json:"status_description"`
	Passed            bool    `json:"passed"`
	Time              float64 `json:"time"`
	MemoryKb          int     `json:"memory_kb"`
	Stdout            *string `json:"stdout,omitempty"`
	Stderr            *string `json:"stderr,omitempty"`
	Input             string  `json:"input"`
	ExpectedOutput    string  `json:"expected_output"`
}

func mapRunResults(results []subm.RunResult) []RunResultResponse {
	mapped := make([]RunResultResponse, len(results))
	for i, res := range results {
		mapped[i] = RunResultResponse{
			StatusId:          res.StatusID,
			StatusDescription: res.StatusDescription,
			Passed:            res.Passed,
			Time:              res.Time,
			MemoryKb:          res.MemoryKB,
			Stdout:            res.Stdout,
			Stderr:            res.Stderr,
			Input:             res.Input,
			ExpectedOutput:    res.ExpectedOutput,
		}
	}
	return mapped
}
