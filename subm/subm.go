package subm

import (
	"time"

	"github.com/google/uuid"
)

// Status is the submission state machine:
//
//	pending -> accepted | wrong | error
//
// Terminal states are absorbing; a submission is written exactly twice,
// once as pending on creation and once with the terminal verdict.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusWrong    Status = "wrong"
	StatusError    Status = "error"
)

func (s Status) IsTerminal() bool {
	return s != StatusPending
}

// Submission is one judged attempt at a problem.
type Submission struct {
	UUID      uuid.UUID
	UserUUID  uuid.UUID
	ProblemID string

	Code     string
	Language string

	Status Status

	// TestCasesTotal is a snapshot of the hidden test case count taken at
	// creation time and never mutated. TestCasesPassed <= TestCasesTotal.
	TestCasesPassed int
	TestCasesTotal  int

	Runtime  float64 // sum of CPU seconds across passed cases
	MemoryKB int     // peak memory across passed cases

	// ErrorMessage is set only for non-accepted terminal states: the
	// judge's description of the first failing case.
	ErrorMessage *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
