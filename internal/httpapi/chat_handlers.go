package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jagv091205/Circle/internal/middleware"
	"github.com/jagv091205/Circle/internal/models"
)

type chatResponse struct {
	Messages []*models.ChatMessage `json:"messages"`
}

type sendChatRequest struct {
	Content string `json:"content"`
}

// SendChatHandler appends a chat message and responds with the circle's
// refetched history, new message last: POST /circles/{circleId}/chat
func (a *API) SendChatHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	circleID := mux.Vars(r)["circleId"]

	var req sendChatRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Error parsing request body", http.StatusBadRequest)
		return
	}

	messages, err := a.Chat.Send(ctx, circleID, middleware.GetUserID(ctx), req.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, chatResponse{Messages: messages})
}

// ChatHistoryHandler returns the circle's chat in conversational order:
// GET /circles/{circleId}/chat
func (a *API) ChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	messages, err := a.Chat.History(r.Context(), mux.Vars(r)["circleId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Messages: messages})
}
