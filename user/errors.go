package user

import (
	"net/http"

	"github.com/codearena/backend/srvcerror"
)

const ErrCodeUserNotFound = "user_not_found"

func ErrUserNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserNotFound,
		"user not found",
	).SetHttpStatusCode(http.StatusNotFound)
}
