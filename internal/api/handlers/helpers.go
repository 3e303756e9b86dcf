package handlers

import (
	"brevet-controle-service/internal/api/dto"
	"brevet-controle-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// statusFromError maps domain validation failures to 400; anything else is a 500.
func statusFromError(err error) int {
	if errors.Is(err, domain.ErrInvalidDistance) || errors.Is(err, domain.ErrInvalidBrevetDistance) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// outcomeLabel names the result of a window computation for the metrics counter.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidDistance):
		return "invalid_distance"
	case errors.Is(err, domain.ErrInvalidBrevetDistance):
		return "invalid_brevet"
	}
	return "error"
}

// startLayouts are the accepted start time formats: full RFC 3339 stamps and
// the zone-less forms registration pages post. Zone-less starts are read as UTC.
var startLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

// parseStartTime parses a ride start time. An empty value means "now".
func parseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse start time %q", s)
}

func windowResponse(win domain.ControleWindow) dto.WindowResponse {
	return dto.WindowResponse{
		DistanceKm:         win.DistanceKm,
		BrevetKm:           int(win.Brevet),
		Open:               win.Open,
		Close:              win.Close,
		OpenOffsetMinutes:  int(win.OpenOffset),
		CloseOffsetMinutes: int(win.CloseOffset),
	}
}
