package subm

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

// SubmissionRow is the submission document layout in DynamoDB.
type SubmissionRow struct {
	Uuid      string `dynamo:"uuid,hash"` // Primary key
	UserUuid  string `dynamo:"user_uuid"`
	ProblemId string `dynamo:"problem_id"`

	Code     string `dynamo:"code"`
	Language string `dynamo:"language"`

	Status          string  `dynamo:"status"`
	TestCasesPassed int     `dynamo:"test_cases_passed"`
	TestCasesTotal  int     `dynamo:"test_cases_total"`
	Runtime         float64 `dynamo:"runtime"`
	MemoryKb        int     `dynamo:"memory_kb"`
	ErrorMessage    *string `dynamo:"error_message,omitempty"`

	CreatedAtUnixMs int64 `dynamo:"created_at_unix_ms"`
	UpdatedAtUnixMs int64 `dynamo:"updated_at_unix_ms"`
}

// DdbSubmRepo stores submissions in a DynamoDB table.
type DdbSubmRepo struct {
	ddbClient *dynamodb.Client
	tableName string
	table     dynamo.Table
}

func NewDdbSubmRepo(ddbClient *dynamodb.Client, tableName string) *DdbSubmRepo {
	repo := &DdbSubmRepo{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(repo.ddbClient)
	repo.table = db.Table(repo.tableName)
	return repo
}

func (r *DdbSubmRepo) Store(ctx context.Context, subm Submission) error {
	row := submToRow(subm)
	if err := r.table.Put(row).Run(ctx); err != nil {
		return fmt.Errorf("failed to store submission %s: %w", subm.UUID, err)
	}
	return nil
}

func (r *DdbSubmRepo) Get(ctx context.Context, uuid uuid.UUID) (*Submission, error) {
	row := new(SubmissionRow)
	err := r.table.Get("uuid", uuid.String()).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, ErrSubmNotFound()
		}
		return nil, fmt.Errorf("failed to get submission %s: %w", uuid, err)
	}
	return rowToSubm(*row)
}

func (r *DdbSubmRepo) ListForProblem(ctx context.Context, userUuid uuid.UUID, problemId string) ([]Submission, error) {
	var rows []SubmissionRow
	err := r.table.Scan().
		Filter("user_uuid = ? AND problem_id = ?", userUuid.String(), problemId).
		All(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	subms := make([]Submission, 0, len(rows))
	for _, row := range rows {
		subm, err := rowToSubm(row)
		if err != nil {
			return nil, err
		}
		subms = append(subms, *subm)
	}
	sort.Slice(subms, func(i, j int) bool {
		return subms[i].CreatedAt.After(subms[j].CreatedAt)
	})
	return subms, nil
}

func submToRow(subm Submission) SubmissionRow {
	return SubmissionRow{
		Uuid:            subm.UUID.String(),
		UserUuid:        subm.UserUUID.String(),
		ProblemId:       subm.ProblemID,
		Code:            subm.Code,
		Language:        subm.Language,
		Status:          string(subm.Status),
		TestCasesPassed: subm.TestCasesPassed,
		TestCasesTotal:  subm.TestCasesTotal,
		Runtime:         subm.Runtime,
		MemoryKb:        subm.MemoryKB,
		ErrorMessage:    subm.ErrorMessage,
		CreatedAtUnixMs: subm.CreatedAt.UnixMilli(),
		UpdatedAtUnixMs: subm.UpdatedAt.UnixMilli(),
	}
}

func rowToSubm(row SubmissionRow) (*Submission, error) {
	submUuid, err := uuid.Parse(row.Uuid)
	if err != nil {
		return nil, fmt.Errorf("failed to parse submission uuid %q: %w", row.Uuid, err)
	}
	userUuid, err := uuid.Parse(row.UserUuid)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user uuid %q: %w", row.UserUuid, err)
	}
	return &Submission{
		UUID:            submUuid,
		UserUUID:        userUuid,
		ProblemID:       row.ProblemId,
		Code:            row.Code,
		Language:        row.Language,
		Status:          Status(row.Status),
		TestCasesPassed: row.TestCasesPassed,
		TestCasesTotal:  row.TestCasesTotal,
		Runtime:         row.Runtime,
		MemoryKB:        row.MemoryKb,
		ErrorMessage:    row.ErrorMessage,
		CreatedAt:       time.UnixMilli(row.CreatedAtUnixMs),
		UpdatedAt:       time.UnixMilli(row.UpdatedAtUnixMs),
	}, nil
}
