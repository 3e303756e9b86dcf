package services

import (
	"brevet-controle-service/internal/domain"
	"errors"
	"testing"
)

func TestNormalizeDistanceKilometres(t *testing.T) {
	c := newTestCalculator(t)

	cases := []struct {
		raw  float64
		want float64
	}{
		{0, 0},
		{100, 100},
		{100.4, 100},
		{100.5, 101},
		{199.9, 200},
	}
	for _, tc := range cases {
		got, err := c.NormalizeDistance(tc.raw, domain.UnitKm, domain.Brevet200)
		if err != nil {
			t.Errorf("NormalizeDistance(%g km): unexpected error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeDistance(%g km) = %g, want %g", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeDistanceMilesTruncate(t *testing.T) {
	c := newTestCalculator(t)

	cases := []struct {
		raw  float64
		want float64
	}{
		{100, 160}, // 160.9344, and a brevet card says 160
		{62.1, 99}, // 99.94 km
		{0.5, 0},
	}
	for _, tc := range cases {
		got, err := c.NormalizeDistance(tc.raw, domain.UnitMiles, domain.Brevet600)
		if err != nil {
			t.Errorf("NormalizeDistance(%g mi): unexpected error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeDistance(%g mi) = %g, want %g", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeDistanceOverrun(t *testing.T) {
	c := newTestCalculator(t)

	// Up to 10% past the finish the controle is scored at the nominal
	// distance; the first kilometre beyond that is rejected.
	got, err := c.NormalizeDistance(220, domain.UnitKm, domain.Brevet200)
	if err != nil {
		t.Fatalf("NormalizeDistance(220 km): unexpected error: %v", err)
	}
	if got != 200 {
		t.Fatalf("NormalizeDistance(220 km) = %g, want 200", got)
	}

	_, err = c.NormalizeDistance(221, domain.UnitKm, domain.Brevet200)
	if !errors.Is(err, domain.ErrInvalidDistance) {
		t.Fatalf("NormalizeDistance(221 km): got %v, want ErrInvalidDistance", err)
	}

	// A mile reading may floor into the overrun zone and still be valid.
	got, err = c.NormalizeDistance(137, domain.UnitMiles, domain.Brevet200)
	if err != nil {
		t.Fatalf("NormalizeDistance(137 mi): unexpected error: %v", err)
	}
	if got != 200 {
		t.Fatalf("NormalizeDistance(137 mi) = %g, want 200", got)
	}

	if _, err := c.NormalizeDistance(1101, domain.UnitKm, domain.Brevet1000); !errors.Is(err, domain.ErrInvalidDistance) {
		t.Fatalf("NormalizeDistance(1101 km, 1000): got %v, want ErrInvalidDistance", err)
	}
}

func TestNormalizeDistanceRejectsBadInput(t *testing.T) {
	c := newTestCalculator(t)

	if _, err := c.NormalizeDistance(-5, domain.UnitKm, domain.Brevet200); !errors.Is(err, domain.ErrInvalidDistance) {
		t.Fatalf("negative distance: got %v, want ErrInvalidDistance", err)
	}

	if _, err := c.NormalizeDistance(50, domain.UnitKm, domain.BrevetDistance(150)); !errors.Is(err, domain.ErrInvalidBrevetDistance) {
		t.Fatalf("150 km brevet: got %v, want ErrInvalidBrevetDistance", err)
	}

	if _, err := c.NormalizeDistance(50, domain.Unit("furlong"), domain.Brevet200); !errors.Is(err, domain.ErrInvalidDistance) {
		t.Fatalf("unknown unit: got %v, want ErrInvalidDistance", err)
	}
}

// Feeding a normalized distance back through must not change it, so the
// calculators can re-validate their inputs without drift.
func TestNormalizeDistanceIdempotent(t *testing.T) {
	c := newTestCalculator(t)

	for _, raw := range []float64{0, 37.4, 100, 137.2, 199.9, 215} {
		once, err := c.NormalizeDistance(raw, domain.UnitKm, domain.Brevet200)
		if err != nil {
			t.Fatalf("NormalizeDistance(%g): %v", raw, err)
		}
		twice, err := c.NormalizeDistance(once, domain.UnitKm, domain.Brevet200)
		if err != nil {
			t.Fatalf("NormalizeDistance(%g) second pass: %v", once, err)
		}
		if once != twice {
			t.Fatalf("normalization drifted: %g -> %g -> %g", raw, once, twice)
		}
	}
}
