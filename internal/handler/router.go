package handler

import (
	"net/http"

	"pdf-summarizer/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// RouterConfig carries the HTTP policies applied around the handlers.
type RouterConfig struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
	Logger         domain.Logger
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(summaryHandler *SummaryHandler, documentHandler *DocumentHandler, cfg RouterConfig) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestLogger(cfg.Logger))
	limitBody := BodyLimit(cfg.MaxBodyBytes)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Summarization proxy
	router.HandleFunc("/health", summaryHandler.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/health", summaryHandler.Health).Methods(http.MethodGet)
	router.Handle("/api/summarize", limitBody(http.HandlerFunc(summaryHandler.Summarize))).Methods(http.MethodPost)

	// Document workflow
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/documents/extract", documentHandler.ExtractDocument).Methods(http.MethodPost)
	api.HandleFunc("/documents/summarize", documentHandler.SummarizeDocument).Methods(http.MethodPost)
	api.Handle("/summaries", limitBody(http.HandlerFunc(documentHandler.SummarizeText))).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", documentHandler.GetSession).Methods(http.MethodGet)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5500"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Content-Type",
			sessionHeader,
		},
		ExposedHeaders: []string{
			sessionHeader,
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
