package handlers

import (
	"brevet-controle-service/internal/api/dto"
	"brevet-controle-service/internal/domain"
	"brevet-controle-service/internal/platform/metrics"
	"brevet-controle-service/internal/platform/obs"
	"brevet-controle-service/internal/ports"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

// CardHandler serves full controle card computations.
type CardHandler struct {
	Scheduler ports.ControleScheduler
	Metrics   *metrics.Collector
}

const maxCardControles = 100

// Card computes the controle card of one brevet: the open and close times of
// every listed controle, in riding order.
func (h *CardHandler) Card(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CardRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	brevet, err := domain.ParseBrevetDistance(req.BrevetKm)
	if err != nil {
		// Label with 0, not the raw input, to keep the label set closed.
		h.Metrics.RecordWindow(0, "invalid_brevet")
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	unitsParam := req.Units
	if unitsParam == "" {
		unitsParam = string(domain.UnitKm)
	}
	unit, err := domain.ParseUnit(unitsParam)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if len(req.Controles) == 0 || len(req.Controles) > maxCardControles {
		writeError(w, r, http.StatusBadRequest, "controles must list between 1 and 100 distances")
		return
	}

	start, err := parseStartTime(req.Start)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "start must be RFC 3339 or YYYY-MM-DDTHH:MM")
		return
	}

	card, err := h.card(r.Context(), req.Controles, unit, brevet, start)
	h.Metrics.RecordWindow(req.BrevetKm, outcomeLabel(err))
	if err != nil {
		if statusFromError(err) == http.StatusBadRequest {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("compute card failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.CardResponse{
		BrevetKm:  int(brevet),
		Start:     start,
		Controles: make([]dto.WindowResponse, 0, len(card)),
	}
	for _, win := range card {
		res.Controles = append(res.Controles, windowResponse(win))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CardHandler) card(ctx context.Context, raws []float64, unit domain.Unit, brevet domain.BrevetDistance, start time.Time) (_ []domain.ControleWindow, err error) {
	defer obs.Time(ctx, "schedule.Card")(&err)
	return h.Scheduler.Card(raws, unit, brevet, start)
}
