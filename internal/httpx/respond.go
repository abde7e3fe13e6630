package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ariefcatur/go-payment-connector.git/internal/apperr"
	"github.com/ariefcatur/go-payment-connector.git/internal/platform"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP codes. Dock
// misconfiguration and gateway failures stay generic 5xx; the merchant has
// to fix them out of band.
func writeError(w http.ResponseWriter, err error) {
	var authErr *apperr.AuthenticationError
	var inputErr *apperr.UserInputError

	switch {
	case errors.As(err, &authErr):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": authErr.Reason})
	case errors.As(err, &inputErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": inputErr.Reason})
	case errors.Is(err, apperr.ErrDockAddressMisconfiguration):
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// SettingsLoader fetches the per-tenant settings threaded into every core
// operation.
type SettingsLoader interface {
	GetAppSettings(ctx context.Context, appID string) (platform.Settings, error)
}
