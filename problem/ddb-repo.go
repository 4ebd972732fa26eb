package problem

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// TestCaseRow mirrors TestCase inside the problem document.
type TestCaseRow struct {
	Input       string `dynamo:"input"`
	Output      string `dynamo:"output"`
	Explanation string `dynamo:"explanation,omitempty"`
}

// ProblemRow is the problem document layout in DynamoDB.
type ProblemRow struct {
	Id         string        `dynamo:"id,hash"` // Primary key
	Title      string        `dynamo:"title"`
	Difficulty string        `dynamo:"difficulty"`
	Visible    []TestCaseRow `dynamo:"visible_test_cases"`
	Hidden     []TestCaseRow `dynamo:"hidden_test_cases"`
}

// DdbProblemRepo reads problem documents from a DynamoDB table.
type DdbProblemRepo struct {
	ddbClient *dynamodb.Client
	tableName string
	table     dynamo.Table
}

func NewDdbProblemRepo(ddbClient *dynamodb.Client, tableName string) *DdbProblemRepo {
	repo := &DdbProblemRepo{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(repo.ddbClient)
	repo.table = db.Table(repo.tableName)
	return repo
}

func (r *DdbProblemRepo) Get(ctx context.Context, id string) (*Problem, error) {
	row := new(ProblemRow)
	err := r.table.Get("id", id).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, ErrProblemNotFound()
		}
		return nil, fmt.Errorf("failed to get problem %s: %w", id, err)
	}
	p := rowToProblem(*row)
	return &p, nil
}

func (r *DdbProblemRepo) Store(ctx context.Context, p Problem) error {
	row := problemToRow(p)
	if err := r.table.Put(row).Run(ctx); err != nil {
		return fmt.Errorf("failed to store problem %s: %w", p.ID, err)
	}
	return nil
}

func rowToProblem(row ProblemRow) Problem {
	return Problem{
		ID:               row.Id,
		Title:            row.Title,
		Difficulty:       row.Difficulty,
		VisibleTestCases: rowsToCases(row.Visible),
		HiddenTestCases:  rowsToCases(row.Hidden),
	}
}

func problemToRow(p Problem) ProblemRow {
	return ProblemRow{
		Id:         p.ID,
		Title:      p.Title,
		Difficulty: p.Difficulty,
		Visible:    casesToRows(p.VisibleTestCases),
		Hidden:     casesToRows(p.HiddenTestCases),
	}
}

func rowsToCases(rows []TestCaseRow) []TestCase {
	cases := make([]TestCase, len(rows))
	for i, row := range rows {
		cases[i] = TestCase(row)
	}
	return cases
}

func casesToRows(cases []TestCase) []TestCaseRow {
	rows := make([]TestCaseRow, len(cases))
	for i, c := range cases {
		rows[i] = TestCaseRow(c)
	}
	return rows
}
