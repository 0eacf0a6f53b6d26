package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jagv091205/Circle/internal/middleware"
	"github.com/jagv091205/Circle/internal/models"
)

type circlesResponse struct {
	Circles []*models.Circle `json:"circles"`
}

// MyCirclesHandler lists the circles the user belongs to: GET /my-circles
func (a *API) MyCirclesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	circles, err := a.Circles.ListForUser(ctx, middleware.GetUserID(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, circlesResponse{Circles: circles})
}

type createCircleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
}

// CreateCircleHandler creates a circle: POST /circles
//
// Accepts either a JSON body (name, description, is_private) or a
// multipart form with the same fields plus an optional "cover" file.
func (a *API) CreateCircleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createCircleRequest
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		req.Name = r.FormValue("name")
		req.Description = r.FormValue("description")
		req.IsPrivate, _ = strconv.ParseBool(r.FormValue("is_private"))
	} else {
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "Error parsing request body", http.StatusBadRequest)
			return
		}
	}

	cover, file, err := formUpload(r, "cover")
	if err != nil {
		http.Error(w, "Error reading cover upload", http.StatusBadRequest)
		return
	}
	if file != nil {
		defer file.Close()
	}

	circle, err := a.Circles.Create(ctx, middleware.GetUserID(ctx), req.Name, req.Description, req.IsPrivate, cover)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, circle)
}

// DiscoverHandler lists public circles: GET /discover?q=term
func (a *API) DiscoverHandler(w http.ResponseWriter, r *http.Request) {
	circles, err := a.Circles.Discover(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, circlesResponse{Circles: circles})
}

// CircleDetailHandler returns the assembled detail screen state:
// GET /circles/{circleId}
func (a *API) CircleDetailHandler(w http.ResponseWriter, r *http.Request) {
	circleID := mux.Vars(r)["circleId"]
	detail, err := a.Circles.Detail(r.Context(), circleID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// CircleFeedHandler returns a circle's recent posts for the discovery
// preview: GET /circles/{circleId}/feed
func (a *API) CircleFeedHandler(w http.ResponseWriter, r *http.Request) {
	circleID := mux.Vars(r)["circleId"]

	// The preview only makes sense for a circle that resolves.
	if _, err := a.Circles.Get(r.Context(), circleID); err != nil {
		writeError(w, err)
		return
	}

	posts, err := a.Circles.Feed(r.Context(), circleID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, postsResponse{Posts: posts})
}

// JoinCircleHandler adds the user as a member: POST /circles/{circleId}/join
func (a *API) JoinCircleHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	circleID := mux.Vars(r)["circleId"]

	membership, err := a.Circles.Join(ctx, circleID, middleware.GetUserID(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, membership)
}
