package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"

	"github.com/codearena/backend/httpjson"
)

func (httpserver *HttpServer) listProblemSubmissions(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	userUuid, err := identityFromRequest(r)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	problemId := chi.URLParam(r, "problemId")

	subms, err := httpserver.submSrvc.ListForProblem(r.Context(), userUuid, problemId)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	response := make([]SubmissionResponse, len(subms))
	for i, subm := range subms {
		response[i] = mapSubm(subm)
	}

	httpjson.WriteSuccessJson(w, response)
}
