package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jagv091205/Circle/internal/middleware"
	"github.com/jagv091205/Circle/internal/models"
)

type postsResponse struct {
	Posts []*models.Post `json:"posts"`
}

type createPostRequest struct {
	Content string `json:"content"`
}

// CreatePostHandler publishes a post and responds with the circle's
// refetched post list, newest first: POST /circles/{circleId}/posts
//
// No emptiness check on content; the submit affordance is the only
// guard.
func (a *API) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	circleID := mux.Vars(r)["circleId"]

	var req createPostRequest
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		req.Content = r.FormValue("content")
	} else {
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "Error parsing request body", http.StatusBadRequest)
			return
		}
	}

	image, file, err := formUpload(r, "image")
	if err != nil {
		http.Error(w, "Error reading image upload", http.StatusBadRequest)
		return
	}
	if file != nil {
		defer file.Close()
	}

	posts, err := a.Posts.Create(ctx, circleID, middleware.GetUserID(ctx), req.Content, image)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, postsResponse{Posts: posts})
}
