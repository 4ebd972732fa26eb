package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/codearena/backend/auth"
	"github.com/codearena/backend/logger"
	"github.com/codearena/backend/subm"
)

type HttpServer struct {
	submSrvc *subm.SubmissionSrvc
	router   *chi.Mux
}

func NewHttpServer(submSrvc *subm.SubmissionSrvc, jwtKey []byte) *HttpServer {
	router := chi.NewRouter()

	requestLogger := httplog.NewLogger("codearena", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(requestLogger))
	router.Use(loggerIntoContext)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "https://codearena.dev"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		submSrvc: submSrvc,
		router:   router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/submissions/{problemId}/submit", httpserver.submitSolution)
	r.Post("/submissions/{problemId}/run", httpserver.runSolution)
	r.Get("/submissions/{submUuid}", httpserver.getSubmission)
	r.Get("/problems/{problemId}/submissions", httpserver.listProblemSubmissions)
	r.Get("/languages", httpserver.listLanguages)
}

// loggerIntoContext makes the per-request httplog logger available to the
// service layer through the logger package.
func loggerIntoContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithLogger(r.Context(), httplog.LogEntry(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
