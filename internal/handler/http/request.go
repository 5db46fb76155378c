package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/hris-core/hris-backend-go/internal/handler/http/response"
	"github.com/hris-core/hris-backend-go/internal/pkg/validator"
)

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched. It writes a 400 and returns false when the body is malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		slog.Debug("request decode error", "path", r.URL.Path, "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(r *http.Request, key string) (*time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	date, ok := validator.IsValidDate(value)
	if !ok {
		return nil, validator.ValidationErrors{}.Add(key, "must be a date in YYYY-MM-DD format")
	}
	return &date, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, key string) (*int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, validator.ValidationErrors{}.Add(key, "must be an integer")
	}
	return &n, nil
}
