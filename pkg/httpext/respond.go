package httpext

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/fanbase-labs/relation-storage/pkg/errs"
)

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}

// WriteError renders domain errors with their contract message and hides
// infrastructure errors behind a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	status := errs.HTTPStatus(err)
	message := "internal error"
	if status != http.StatusInternalServerError {
		message = err.Error()
	}

	WriteMessage(w, status, message)
}
