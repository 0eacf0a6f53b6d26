// Package httpapi exposes the Circle+ operations as an HTTP JSON API.
// Each route corresponds to a screen operation; mutation responses carry
// the refetched listing so clients replace their view state wholesale.
package httpapi

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jagv091205/Circle/internal/service"
)

// maxUploadBytes caps multipart uploads (profile photos, cover images).
const maxUploadBytes = 5 << 20 // 5MB

// API holds the per-entity services behind the HTTP handlers.
type API struct {
	Auth    *service.AuthService
	Users   *service.UserService
	Circles *service.CircleService
	Posts   *service.PostService
	Chat    *service.ChatService
}

// formUpload extracts an optional file field from an already-parsed
// multipart form. Returns (nil, nil, nil) when the field is absent.
func formUpload(r *http.Request, field string) (*service.Upload, multipart.File, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return &service.Upload{Filename: header.Filename, Content: file}, file, nil
}

// isMultipart reports whether the request carries a multipart form.
func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}
