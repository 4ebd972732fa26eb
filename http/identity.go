package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/codearena/backend/auth"
	"github.com/codearena/backend/srvcerror"
)

const ErrCodeUnauthorized = "unauthorized"

func ErrUnauthorized() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnauthorized,
		"authentication required",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

// identityFromRequest resolves the caller's user uuid from the JWT claims
// the auth middleware stored in the request context.
func identityFromRequest(r *http.Request) (uuid.UUID, error) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		return uuid.Nil, ErrUnauthorized()
	}
	userUuid, err := uuid.Parse(claims.UUID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized().SetDebug(err)
	}
	return userUuid, nil
}
