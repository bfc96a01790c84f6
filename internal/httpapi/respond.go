package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/hbfa/milestones/internal/contract"
)

const (
	msgInternal         = "Internal server error"
	msgMethodNotAllowed = "Method not allowed"
	msgNotFound         = "Not found"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps request errors to 400 with their message. Anything else is
// logged and reported as a bare 500.
func writeError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	if re, ok := contract.AsRequestError(err); ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: re.Message})
		return
	}
	logger.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", r.Header.Get(requestIDHeader),
		"error", err.Error(),
	)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: msgInternal})
}

// decodeBody reads a JSON object body. An empty body decodes as {}.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return contract.InvalidField("request body is not valid JSON: %s", err.Error())
	}
	return nil
}

// methods dispatches on the request method. Other methods get a JSON 405.
func methods(handlers map[string]http.HandlerFunc) http.HandlerFunc {
	allowed := make([]string, 0, len(handlers))
	for m := range handlers {
		allowed = append(allowed, m)
	}
	slices.Sort(allowed)
	allow := strings.Join(allowed, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.Method]
		if !ok {
			w.Header().Set("Allow", allow)
			writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: msgMethodNotAllowed})
			return
		}
		h(w, r)
	}
}

func queryFlag(r *http.Request, name string) bool {
	return r.URL.Query().Get(name) == "true"
}
