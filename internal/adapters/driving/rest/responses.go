package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/logger"
)

// Response is the envelope of every API response.
type Response struct {
	Code int    `json:"code"`
	Text string `json:"text"`
	Data any    `json:"data,omitempty"`
}

func sendResponse(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{
		Code: status,
		Text: http.StatusText(status),
		Data: data,
	})
}

func sendError(w http.ResponseWriter, status int, text string) {
	writeJSON(w, status, Response{Code: status, Text: text})
}

// sendDomainError maps a domain error to its HTTP status.
func sendDomainError(w http.ResponseWriter, err error) {
	sendError(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownCategory), errors.Is(err, domain.ErrUnknownUnit):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRateUnavailable),
		errors.Is(err, domain.ErrUnsupportedTemperaturePair),
		errors.Is(err, domain.ErrResultOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes body before touching the status line so an
// unencodable payload still reaches the client as a JSON 500.
func writeJSON(w http.ResponseWriter, status int, body Response) {
	data, err := json.Marshal(body)
	if err != nil {
		logger.Warn("rest: encoding response: %v", err)
		status = http.StatusInternalServerError
		data, _ = json.Marshal(Response{Code: status, Text: "failed to encode response"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(data, '\n')); err != nil {
		logger.Warn("rest: writing response: %v", err)
	}
}
