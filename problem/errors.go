package problem

import (
	"net/http"

	"github.com/codearena/backend/srvcerror"
)

const ErrCodeProblemNotFound = "problem_not_found"

func ErrProblemNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemNotFound,
		"problem not found",
	).SetHttpStatusCode(http.StatusNotFound)
}
