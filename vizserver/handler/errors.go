package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/wybiral/air-hockey/common/utils"
	"github.com/wybiral/air-hockey/game/hockey"
	"github.com/wybiral/air-hockey/hockeyserver"
)

// errBadRequest marks errors caused by the request content.
type errBadRequest struct {
	error
}

func badRequest(err error) error {
	return errBadRequest{err}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var bad errBadRequest
	switch {
	case errors.As(err, &bad):
		status = http.StatusBadRequest
	case errors.Is(err, hockey.ErrNoNetwork):
		status = http.StatusNotFound
	case errors.Is(err, hockeyserver.ErrStopped):
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	data, err := json.Marshal(value)
	utils.Check(err, "Failed to marshal response")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
