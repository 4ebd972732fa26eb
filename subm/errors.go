package subm

import (
	"net/http"

	"github.com/codearena/backend/srvcerror"
)

const ErrCodeSubmNotFound = "submission_not_found"

func ErrSubmNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmNotFound,
		"submission not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeMissingField = "missing_field"

func ErrMissingField(field string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingField,
		field+" is required",
	).SetHttpStatusCode(http.StatusBadRequest)
}
