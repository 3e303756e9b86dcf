package handlers

import (
	"brevet-controle-service/internal/domain"
	"brevet-controle-service/internal/platform/metrics"
	"brevet-controle-service/internal/platform/obs"
	"brevet-controle-service/internal/ports"
	"context"
	"log"
	"net/http"
	"strconv"
	"time"
)

// TimesHandler serves single-controle window lookups.
type TimesHandler struct {
	Scheduler ports.ControleScheduler
	Metrics   *metrics.Collector
}

// Window computes when one controle opens and closes. Query parameters:
// distance (required), brevet (required, nominal km), unit (km|mi, default km),
// start (RFC 3339 or YYYY-MM-DDTHH:MM, default now).
func (h *TimesHandler) Window(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	distance, err := strconv.ParseFloat(q.Get("distance"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "distance must be a number")
		return
	}

	unitParam := q.Get("unit")
	if unitParam == "" {
		unitParam = string(domain.UnitKm)
	}
	unit, err := domain.ParseUnit(unitParam)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	brevetKm, err := strconv.Atoi(q.Get("brevet"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "brevet must be an integer")
		return
	}
	brevet, err := domain.ParseBrevetDistance(brevetKm)
	if err != nil {
		// Label with 0, not the raw input, to keep the label set closed.
		h.Metrics.RecordWindow(0, "invalid_brevet")
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	start, err := parseStartTime(q.Get("start"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start must be RFC 3339 or YYYY-MM-DDTHH:MM")
		return
	}

	win, err := h.window(r.Context(), distance, unit, brevet, start)
	h.Metrics.RecordWindow(brevetKm, outcomeLabel(err))
	if err != nil {
		if status := statusFromError(err); status == http.StatusBadRequest {
			writeError(w, r, status, err.Error())
			return
		}
		log.Printf("compute window failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, windowResponse(win))
}

func (h *TimesHandler) window(ctx context.Context, raw float64, unit domain.Unit, brevet domain.BrevetDistance, start time.Time) (_ domain.ControleWindow, err error) {
	defer obs.Time(ctx, "schedule.Window")(&err)
	return h.Scheduler.Window(raw, unit, brevet, start)
}
