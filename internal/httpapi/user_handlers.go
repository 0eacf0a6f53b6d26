package httpapi

import (
	"net/http"

	"github.com/jagv091205/Circle/internal/middleware"
)

// MeHandler returns the authenticated user's profile: GET /me
func (a *API) MeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, err := a.Users.Profile(ctx, middleware.GetUserID(ctx), middleware.GetEmail(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
}

// UpdateMeHandler applies a partial profile update: PUT /me
//
// Accepts either a JSON body (display_name, bio) or a multipart form
// with the same fields plus an optional "photo" file.
func (a *API) UpdateMeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req updateProfileRequest
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		if values, ok := r.MultipartForm.Value["display_name"]; ok && len(values) > 0 {
			req.DisplayName = &values[0]
		}
		if values, ok := r.MultipartForm.Value["bio"]; ok && len(values) > 0 {
			req.Bio = &values[0]
		}
	} else {
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "Error parsing request body", http.StatusBadRequest)
			return
		}
	}

	photo, file, err := formUpload(r, "photo")
	if err != nil {
		http.Error(w, "Error reading photo upload", http.StatusBadRequest)
		return
	}
	if file != nil {
		defer file.Close()
	}

	user, err := a.Users.UpdateProfile(ctx, userID, req.DisplayName, req.Bio, photo)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// LookupUserHandler finds a user by email: GET /users/lookup?email=
func (a *API) LookupUserHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "email query parameter is required", http.StatusBadRequest)
		return
	}

	user, err := a.Users.FindByEmail(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
