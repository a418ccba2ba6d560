package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/diskusi-dev/diskusi/internal/logger"
	"github.com/diskusi-dev/diskusi/internal/service"
)

// Pinger is what the readiness probe needs from storage.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	health  Pinger
}

func New(thread service.ThreadService, comment service.CommentService, reply service.ReplyService, health Pinger) *Handler {
	return &Handler{thread, comment, reply, health}
}

type successResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(successResponse{Status: "success", Data: data}); err != nil {
		logger.Log.Error("can't encode response", "err", err.Error())
	}
}
