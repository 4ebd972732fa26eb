package http

import (
	"net/http"

	"github.com/codearena/backend/httpjson"
	"github.com/codearena/backend/judge0"
)

func (httpserver *HttpServer) listLanguages(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteSuccessJson(w, judge0.SupportedLanguages())
}
