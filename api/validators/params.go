package validators

import (
	"net/http"
	"strings"

	pkgerrors "github.com/angelmondragon/bachelorhub-backend/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ParseUUIDParam reads a chi path parameter as a UUID. A malformed value is
// reported as "Invalid <resource> ID".
func ParseUUIDParam(r *http.Request, name, resource string) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeInvalidID, "Invalid "+strings.ToLower(resource)+" ID")
	}
	return id, nil
}

// PathValue returns a trimmed chi path parameter.
func PathValue(r *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}
