package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

// UserRow is the user document layout in DynamoDB.
type UserRow struct {
	Uuid     string   `dynamo:"uuid,hash"` // Primary key
	Username string   `dynamo:"username"`
	Email    string   `dynamo:"email"`
	Solved   []string `dynamo:"solved,set,omitempty"`
}

// DdbUserRepo reads and updates user documents in a DynamoDB table.
type DdbUserRepo struct {
	ddbClient *dynamodb.Client
	tableName string
	table     dynamo.Table
}

func NewDdbUserRepo(ddbClient *dynamodb.Client, tableName string) *DdbUserRepo {
	repo := &DdbUserRepo{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(repo.ddbClient)
	repo.table = db.Table(repo.tableName)
	return repo
}

func (r *DdbUserRepo) Get(ctx context.Context, uuid uuid.UUID) (*User, error) {
	row := new(UserRow)
	err := r.table.Get("uuid", uuid.String()).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, ErrUserNotFound()
		}
		return nil, fmt.Errorf("failed to get user %s: %w", uuid, err)
	}
	u, err := rowToUser(*row)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *DdbUserRepo) Store(ctx context.Context, u User) error {
	row := UserRow{
		Uuid:     u.UUID.String(),
		Username: u.Username,
		Email:    u.Email,
		Solved:   u.SolvedProblems,
	}
	if err := r.table.Put(row).Run(ctx); err != nil {
		return fmt.Errorf("failed to store user %s: %w", u.UUID, err)
	}
	return nil
}

// AddSolvedProblem adds the problem to the user's solved set with a single
// DynamoDB ADD update. The string-set ADD is atomic on the server side, so
// concurrent accepted submissions of the same problem cannot produce a
// duplicate entry.
func (r *DdbUserRepo) AddSolvedProblem(ctx context.Context, uuid uuid.UUID, problemId string) error {
	err := r.table.Update("uuid", uuid.String()).
		AddStringsToSet("solved", problemId).
		Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to add solved problem %s for user %s: %w", problemId, uuid, err)
	}
	return nil
}

func rowToUser(row UserRow) (*User, error) {
	id, err := uuid.Parse(row.Uuid)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user uuid %q: %w", row.Uuid, err)
	}
	return &User{
		UUID:           id,
		Username:       row.Username,
		Email:          row.Email,
		SolvedProblems: row.Solved,
	}, nil
}
