package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"

	"github.com/codearena/backend/httpjson"
)

type solutionRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

func (httpserver *HttpServer) submitSolution(w http.ResponseWriter, r *http.Request) {
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

	subm, err := httpserver.submSrvc.Submit(r.Context(), userUuid, problemId, req.Code, req.Language)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJsonCode(w, mapSubm(*subm), http.StatusCreated)
}
