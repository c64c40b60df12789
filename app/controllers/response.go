package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"inkpress/app/models"
	"inkpress/app/repositories"

	"github.com/gorilla/mux"
)

// maxBodyBytes caps the size of JSON request bodies.
const maxBodyBytes = 1 << 20

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Response is the envelope of every API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Total   *int        `json:"total,omitempty"`
	Query   string      `json:"query,omitempty"`
}

func sendJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func sendData(w http.ResponseWriter, status int, data interface{}) {
	sendJSON(w, status, Response{Success: true, Data: data})
}

func sendList[T any](w http.ResponseWriter, items []T) {
	total := len(items)
	sendJSON(w, http.StatusOK, Response{Success: true, Data: items, Total: &total})
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, Response{Success: false, Error: message})
}

// sendFailure maps err to a response: validation errors become 400 with
// their own message, missing records 404 with notFound, anything else is
// logged and answered with 500 and failure.
func sendFailure(w http.ResponseWriter, r *http.Request, err error, notFound, failure string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		sendError(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, repositories.ErrNotFound) && notFound != "":
		sendError(w, http.StatusNotFound, notFound)
	default:
		slog.Error(failure, "error", err, "method", r.Method, "path", r.URL.Path)
		sendError(w, http.StatusInternalServerError, failure)
	}
}

// decodeJSON reads the request body into v. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return models.NewValidationError("Invalid JSON: " + err.Error())
	}
	return nil
}

// pathID returns the named path variable if it is a well-formed identifier.
// Otherwise it answers 400 and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := mux.Vars(r)[name]
	if !idPattern.MatchString(id) {
		sendError(w, http.StatusBadRequest, "Invalid post ID")
		return "", false
	}
	return id, true
}

// MethodNotAllowed answers requests whose method is not in methods.
func MethodNotAllowed(methods ...string) http.HandlerFunc {
	allow := strings.Join(methods, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		sendError(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed", r.Method))
	}
}

// NotFound answers requests for unknown API paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	sendError(w, http.StatusNotFound, "Not found")
}
