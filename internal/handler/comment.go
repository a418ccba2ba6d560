package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	threadId := mux.Vars(r)["threadId"]

	var body map[string]any
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.comment.Create(map[string]any{
		"content":  body["content"],
		"threadId": threadId,
		"owner":    user.Id,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedComment": added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	vars := mux.Vars(r)

	err := h.comment.Delete(map[string]any{
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
