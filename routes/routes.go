package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/furuilin66/guandan/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes wires the API, the websocket feed and the static SPA onto the
// router.
func SetupRoutes(
	router *chi.Mux,
	teamHandler *handlers.TeamHandler,
	matchHandler *handlers.MatchHandler,
	authHandler *handlers.AuthHandler,
	webSocketHandler *handlers.WebSocketHandler,
	staticDir string,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthCheck)

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.List)
			r.Post("/login", teamHandler.Login)
			r.Put("/{teamID}", teamHandler.Update)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Post("/record", matchHandler.Record)
			r.Get("/leaderboard", matchHandler.Leaderboard)
			r.Get("/leaderboard/export", matchHandler.Export)
			r.Get("/team/{teamID}", matchHandler.TeamMatches)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/reset", authHandler.Reset)
		})
	})

	router.Get("/ws/leaderboard", webSocketHandler.ServeWs)

	// Everything else is the SPA: real files are served as-is, unknown paths
	// fall back to index.html so client-side routing works after a refresh.
	router.NotFound(spaHandler(staticDir))
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"success":true,"message":"ok"}`))
}

func spaHandler(staticDir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(staticDir))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"error":"API not found"}`))
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	}
}
