package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
	"github.com/diskusi-dev/diskusi/internal/translator"
)

type failResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteErrorAndStatusCode is the global error responder: classified errors
// keep their status code and get their code translated to a user-facing
// message; anything else becomes a generic 500 without leaking detail.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		message := e.Message
		if message == "" {
			message = translator.Message(e.Code)
		}
		writeJSONStatus(w, e.StatusCode, failResponse{Status: "fail", Message: message})
		return
	}

	logger.Log.Error("unhandled error", "err", err.Error())
	writeJSONStatus(w, http.StatusInternalServerError, failResponse{
		Status:  "error",
		Message: translator.InternalServerMessage,
	})
}

func writeJSONStatus(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("can't encode response", "err", err.Error())
	}
}

// Decode reads a JSON request body. The payload stays a plain map so entity
// validators can classify missing fields and wrong types themselves.
func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}
