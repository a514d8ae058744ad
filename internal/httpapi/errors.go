package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"fitscan/pkg/types"
)

// User-facing messages of errors raised by the HTTP layer itself.
const (
	msgInternal     = "Erro interno do servidor. Tente novamente."
	msgRateLimited  = "Muitas requisições. Tente novamente em 1 minuto."
	msgTooLarge     = "Arquivo muito grande."
	msgMissingImage = "Envie uma imagem no campo image."
	msgBadForm      = "Formulário inválido."
	msgUnavailable  = "Serviço indisponível. Tente novamente."
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Detail: msg, Code: status})
}

// writeServiceError maps an error returned by the Service to a response.
// Errors without a status code are logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var he HTTPError
	switch {
	case errors.As(err, &he):
		writeJSONError(w, he.StatusCode(), he.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeJSONError(w, http.StatusServiceUnavailable, msgUnavailable)
	default:
		if zlog != nil {
			zlog.Error().Err(err).Str("path", r.URL.Path).Str("request_id", middleware.GetReqID(r.Context())).Msg("request failed")
		}
		writeJSONError(w, http.StatusInternalServerError, msgInternal)
	}
}
