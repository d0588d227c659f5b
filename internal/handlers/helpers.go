package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/budgetbrew/budgetbrew-server/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
)

// encodeFailedBody is sent when a response value cannot be marshalled.
const encodeFailedBody = `{"detail":"failed to encode response"}` + "\n"

// writeJSON marshals v and writes it with the given status. The body is
// built before the header goes out, so an encoding failure still yields a
// well-formed 500.
func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(encodeFailedBody))
		return fmt.Errorf("encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// responder is embedded by every JSON handler. It writes responses and logs
// the ones that could not be delivered.
type responder struct {
	logger logging.Logger
}

func (rs responder) respond(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	if err := writeJSON(w, status, v); err != nil {
		rs.logger.Error("failed to write response",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err,
		)
	}
}

// respondError writes a standard JSON error response of the form
// {"detail": "message"}.
func (rs responder) respondError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	rs.respond(w, r, status, map[string]string{"detail": detail})
}

// ErrorsHandler answers API requests no route claimed.
type ErrorsHandler struct {
	responder
}

// NewErrorsHandler creates a new ErrorsHandler.
func NewErrorsHandler(logger logging.Logger) *ErrorsHandler {
	return &ErrorsHandler{responder{logger: logger}}
}

// NotFound answers unmatched API paths with a JSON 404.
func (h *ErrorsHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, http.StatusNotFound, "not found")
}

// MethodNotAllowed answers API paths hit with an unsupported method.
func (h *ErrorsHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
