package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/domain"
)

const pageURLTakenMessage = "pageUrl already exists. Please use a different title."

// writeJSON encodes v as the response body with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status code by its class. Unclassified errors
// are logged and answered with fallback so driver details never reach the
// client.
func writeError(w http.ResponseWriter, logger hclog.Logger, err error, fallback string) {
	var verrs domain.ValidationErrors

	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: verrs.Messages()})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: pageURLTakenMessage})
	case errors.Is(err, domain.ErrInvalid):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: publicMessage(err, domain.ErrInvalid)})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: publicMessage(err, nil)})
	default:
		logger.Error(fallback, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// publicMessage strips the class prefix from err and capitalizes the rest,
// turning "invalid input: at least one image is required" into
// "At least one image is required".
func publicMessage(err error, class error) string {
	msg := err.Error()
	if class != nil {
		msg = strings.TrimPrefix(msg, class.Error()+": ")
	}

	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
