package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)

	var body map[string]any
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.reply.Create(map[string]any{
		"content":   body["content"],
		"commentId": vars["commentId"],
		"threadId":  vars["threadId"],
		"owner":     user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedReply": added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)

	err := h.reply.Delete(map[string]any{
		"replyId":   vars["replyId"],
		"commentId": vars["commentId"],
		"threadId":  vars["threadId"],
		"owner":     user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
