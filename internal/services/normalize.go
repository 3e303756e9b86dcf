package services

import (
	"brevet-controle-service/internal/domain"
	"fmt"
)

// maxOverrunFactor bounds how far past the nominal finish a controle may
// sit: up to 10% over, it is scored as if located at the nominal distance;
// beyond that the official ACP calculator rejects the input outright.
const maxOverrunFactor = 1.1

// NormalizeDistance converts a raw controle reading into the whole-kilometre
// distance the calculators work on. Mile readings are converted at exactly
// 1.609344 km/mi and truncated, never rounded; kilometre readings with
// sub-integer precision are rounded to the nearest kilometre, halves away
// from zero. The result is then capped against the brevet's finish overrun
// rule.
func (c *Calculator) NormalizeDistance(raw float64, unit domain.Unit, brevet domain.BrevetDistance) (float64, error) {
	if !brevet.Valid() {
		return 0, fmt.Errorf("normalize distance: %d km brevet: %w", int(brevet), domain.ErrInvalidBrevetDistance)
	}
	if raw < 0 {
		return 0, fmt.Errorf("normalize distance: %g %s is negative: %w", raw, unit, domain.ErrInvalidDistance)
	}

	var km float64
	switch unit {
	case domain.UnitMiles:
		km = floorKm(raw * domain.KmPerMile)
	case domain.UnitKm:
		km = roundKm(raw)
	default:
		return 0, fmt.Errorf("normalize distance: unit %q is not km or mi: %w", unit, domain.ErrInvalidDistance)
	}

	return c.capToBrevet(km, brevet)
}

// checkDistance is the validation the calculators apply themselves: the
// distance must be non-negative and within the overrun cap. It never does
// unit conversion or kilometre rounding, so feeding an already normalized
// distance back through is a no-op.
func (c *Calculator) checkDistance(distanceKm float64, brevet domain.BrevetDistance) (float64, error) {
	if !brevet.Valid() {
		return 0, fmt.Errorf("check distance: %d km brevet: %w", int(brevet), domain.ErrInvalidBrevetDistance)
	}
	if distanceKm < 0 {
		return 0, fmt.Errorf("check distance: %g km is negative: %w", distanceKm, domain.ErrInvalidDistance)
	}
	return c.capToBrevet(distanceKm, brevet)
}

func (c *Calculator) capToBrevet(km float64, brevet domain.BrevetDistance) (float64, error) {
	nominal := brevet.Km()
	switch {
	case km <= nominal:
		return km, nil
	case km <= nominal*maxOverrunFactor:
		// The controle is scored as if located at the brevet's nominal end.
		return nominal, nil
	}
	return 0, fmt.Errorf("check distance: %g km is past the %.0f km overrun limit of a %d km brevet: %w",
		km, nominal*maxOverrunFactor, int(brevet), domain.ErrInvalidDistance)
}
