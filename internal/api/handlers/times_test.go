package handlers

import (
	"brevet-controle-service/internal/api/dto"
	"brevet-controle-service/internal/domain"
	"brevet-controle-service/internal/services"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestScheduler(t *testing.T) *services.Calculator {
	t.Helper()
	calc, err := services.NewCalculator()
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	return calc
}

// stubScheduler lets handler tests force failures the real calculator
// would never produce.
type stubScheduler struct {
	err error
}

func (s *stubScheduler) Window(float64, domain.Unit, domain.BrevetDistance, time.Time) (domain.ControleWindow, error) {
	return domain.ControleWindow{}, s.err
}

func (s *stubScheduler) Card([]float64, domain.Unit, domain.BrevetDistance, time.Time) ([]domain.ControleWindow, error) {
	return nil, s.err
}

func TestTimesHandlerWindow(t *testing.T) {
	h := &TimesHandler{Scheduler: newTestScheduler(t)}

	req := httptest.NewRequest(http.MethodGet, "/times?distance=100&brevet=200&start=2021-02-20T14:00", nil)
	rec := httptest.NewRecorder()
	h.Window(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}

	var res dto.WindowResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.DistanceKm != 100 || res.BrevetKm != 200 {
		t.Errorf("distance/brevet = %g/%d, want 100/200", res.DistanceKm, res.BrevetKm)
	}
	if res.OpenOffsetMinutes != 176 || res.CloseOffsetMinutes != 400 {
		t.Errorf("offsets = %d/%d, want 176/400", res.OpenOffsetMinutes, res.CloseOffsetMinutes)
	}
	if want := time.Date(2021, 2, 20, 16, 56, 0, 0, time.UTC); !res.Open.Equal(want) {
		t.Errorf("open = %v, want %v", res.Open, want)
	}
	if want := time.Date(2021, 2, 20, 20, 40, 0, 0, time.UTC); !res.Close.Equal(want) {
		t.Errorf("close = %v, want %v", res.Close, want)
	}
}

func TestTimesHandlerWindowMiles(t *testing.T) {
	h := &TimesHandler{Scheduler: newTestScheduler(t)}

	req := httptest.NewRequest(http.MethodGet, "/times?distance=100&unit=mi&brevet=200&start=2021-02-20T14:00", nil)
	rec := httptest.NewRecorder()
	h.Window(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}

	var res dto.WindowResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.DistanceKm != 160 {
		t.Errorf("distance = %g km, want 160", res.DistanceKm)
	}
	if res.OpenOffsetMinutes != 282 {
		t.Errorf("open offset = %d, want 282", res.OpenOffsetMinutes)
	}
}

func TestTimesHandlerWindowBadRequest(t *testing.T) {
	h := &TimesHandler{Scheduler: newTestScheduler(t)}

	cases := []struct {
		name   string
		target string
	}{
		{"missing distance", "/times?brevet=200"},
		{"distance not a number", "/times?distance=abc&brevet=200"},
		{"unknown unit", "/times?distance=100&unit=furlong&brevet=200"},
		{"missing brevet", "/times?distance=100"},
		{"unsanctioned brevet", "/times?distance=100&brevet=250"},
		{"bad start", "/times?distance=100&brevet=200&start=yesterday"},
		{"negative distance", "/times?distance=-5&brevet=200"},
		{"past the overrun cap", "/times?distance=221&brevet=200"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			h.Window(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body)
			}
		})
	}
}

func TestTimesHandlerMethodNotAllowed(t *testing.T) {
	h := &TimesHandler{Scheduler: newTestScheduler(t)}

	req := httptest.NewRequest(http.MethodPost, "/times", nil)
	rec := httptest.NewRecorder()
	h.Window(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodGet {
		t.Fatalf("Allow = %q, want %q", allow, http.MethodGet)
	}
}

func TestTimesHandlerInternalError(t *testing.T) {
	h := &TimesHandler{Scheduler: &stubScheduler{err: errors.New("boom")}}

	req := httptest.NewRequest(http.MethodGet, "/times?distance=100&brevet=200", nil)
	rec := httptest.NewRecorder()
	h.Window(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var res map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res["error"] != "internal server error" {
		t.Fatalf("error = %q, internals must not leak", res["error"])
	}
}
