package server

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/kwatari/article-quadrant/internal/application"
	"github.com/kwatari/article-quadrant/internal/transport/handler"
	"github.com/kwatari/article-quadrant/internal/transport/middleware"
)

// CreateHandler creates the main HTTP handler for the application
func CreateHandler() (http.Handler, func(), error) {
	// Create application (handles all DI and business logic)
	app, err := application.New()
	if err != nil {
		log.Printf("Error creating application: %v\nStack:\n%s", err, debug.Stack())
		return nil, nil, err
	}

	router := Routes(app)

	// Return handler and cleanup function
	cleanup := func() {
		app.Close()
	}

	return router, cleanup, nil
}

// Routes wires the HTTP routes for an already-built application
func Routes(app *application.Application) http.Handler {
	authMiddleware := middleware.Auth(app.Config.AuthToken)

	r := mux.NewRouter()
	r.Handle("/extract", authMiddleware(app.ExtractHandler)).Methods(http.MethodPost)
	r.Handle("/analyze", authMiddleware(app.AnalyzeHandler)).Methods(http.MethodPost)
	r.Handle("/quadrant", authMiddleware(app.QuadrantHandler)).Methods(http.MethodPost)
	r.Handle("/pipeline", authMiddleware(app.PipelineHandler)).Methods(http.MethodPost)
	r.Handle("/cache/clear", authMiddleware(http.HandlerFunc(app.CacheHandler.Clear))).Methods(http.MethodPost)
	r.HandleFunc("/cache/stats", app.CacheHandler.Stats).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handler.Health).Methods(http.MethodGet)

	return r
}

// HandleRequest handles a single HTTP request (for Cloud Functions)
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	handler, cleanup, err := CreateHandler()
	if err != nil {
		log.Printf("Failed to create handler: %v\nStack:\n%s", err, debug.Stack())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cleanup()

	handler.ServeHTTP(w, r)
}
