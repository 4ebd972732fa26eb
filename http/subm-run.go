package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"

	"github.com/codearena/backend/httpjson"
)

func (httpserver *HttpServer) runSolution(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	userUuid, err := identityFromRequest(r)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	problemId := chi.URLParam(r, "problemId")

	var req solutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	results, err := httpserver.submSrvc.Run(r.Context(), userUuid, problemId, req.Code, req.Language)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapRunResults(results))
}
