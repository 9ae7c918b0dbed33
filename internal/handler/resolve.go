package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/atlastrips/backend/internal/domain"
)

// resolveResponse wraps the resolved points.
type resolveResponse struct {
	Items []domain.ResolvedItem `json:"items"`
}

// resolveItems handles GET /resolve?ids=a,b,c&trip_id=.
// ids is a comma-separated list; blank entries are skipped. With trip_id the
// ids are matched against that trip's items, otherwise they are integer keys
// into the places catalog.
func (s *Server) resolveItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var ids []string
	for _, raw := range strings.Split(q.Get("ids"), ",") {
		if id := strings.TrimSpace(raw); id != "" {
			ids = append(ids, id)
		}
	}

	var tripID *uuid.UUID
	if raw := q.Get("trip_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeNotFound(w, "trip not found")
			return
		}
		tripID = &id
	}

	items, err := s.resolver.Resolve(r.Context(), ids, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidIdentifier) {
			writeInvalidIdentifier(w, err)
			return
		}
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{Items: items})
}
