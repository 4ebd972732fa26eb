package judge0

import "strconv"

// Judge0 status ids. The status space of the service is fixed: 1 and 2 mean
// the submission is still queued or running, 3 is accepted, 4 is a wrong
// answer, and everything above is some execution, compilation or system
// error (TLE, SIGSEGV, compile error, internal error, ...).
const (
	StatusInQueue     = 1
	StatusProcessing  = 2
	StatusAccepted    = 3
	StatusWrongAnswer = 4
)

type Status struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// IsTerminal reports whether the judged submission is no longer
// queued or running.
func (s Status) IsTerminal() bool {
	return s.ID > StatusProcessing
}

func (s Status) IsAccepted() bool {
	return s.ID == StatusAccepted
}

// SubmissionRequest is one (source, stdin, expected output) triple sent to
// the judge. Never persisted; lives only for the duration of one evaluation.
type SubmissionRequest struct {
	SourceCode     string `json:"source_code"`
	LanguageID     int    `json:"language_id"`
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output"`
}

// SubmissionResult is the judge verdict for one SubmissionRequest.
type SubmissionResult struct {
	Token  string  `json:"token"`
	Status Status  `json:"status"`
	Time   string  `json:"time"` // CPU time in seconds, decimal string
	Memory int     `json:"memory"`
	Stdout *string `json:"stdout"`
	Stderr *string `json:"stderr"`
}

// TimeSeconds parses the judge's decimal CPU time. A missing or
// malformed value parses as zero.
func (r SubmissionResult) TimeSeconds() float64 {
	t, err := strconv.ParseFloat(r.Time, 64)
	if err != nil {
		return 0
	}
	return t
}
