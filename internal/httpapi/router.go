package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jagv091205/Circle/internal/auth"
	"github.com/jagv091205/Circle/internal/middleware"
)

// NewRouter wires the API routes. blobDir, when non-empty, is mounted at
// blobURLBase for public blob retrieval.
func NewRouter(api *API, jwtManager *auth.JWTManager, blobDir, blobURLBase string) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "OK")
	})
	r.Handle("/metrics", promhttp.Handler())

	// Open routes
	r.HandleFunc("/auth/register", api.RegisterHandler).Methods("POST")
	r.HandleFunc("/auth/login", api.LoginHandler).Methods("POST")
	r.HandleFunc("/discover", api.DiscoverHandler).Methods("GET")
	r.HandleFunc("/circles/{circleId}/feed", api.CircleFeedHandler).Methods("GET")

	// Public blob retrieval
	if blobDir != "" {
		r.PathPrefix(blobURLBase + "/").Handler(
			http.StripPrefix(blobURLBase+"/", http.FileServer(http.Dir(blobDir))),
		)
	}

	// Identity-gated routes
	gated := r.PathPrefix("/").Subrouter()
	gated.Use(middleware.RequireAuth(jwtManager))
	gated.HandleFunc("/me", api.MeHandler).Methods("GET")
	gated.HandleFunc("/me", api.UpdateMeHandler).Methods("PUT")
	gated.HandleFunc("/users/lookup", api.LookupUserHandler).Methods("GET")
	gated.HandleFunc("/my-circles", api.MyCirclesHandler).Methods("GET")
	gated.HandleFunc("/circles", api.CreateCircleHandler).Methods("POST")
	gated.HandleFunc("/circles/{circleId}", api.CircleDetailHandler).Methods("GET")
	gated.HandleFunc("/circles/{circleId}/join", api.JoinCircleHandler).Methods("POST")
	gated.HandleFunc("/circles/{circleId}/posts", api.CreatePostHandler).Methods("POST")
	gated.HandleFunc("/circles/{circleId}/chat", api.ChatHistoryHandler).Methods("GET")
	gated.HandleFunc("/circles/{circleId}/chat", api.SendChatHandler).Methods("POST")

	r.Use(middleware.Metrics)
	r.Use(middleware.Logging)

	return r
}
