package services

import "brevet-controle-service/internal/domain"

const (
	// startWindowMinutes keeps the start controle open for a full hour
	// after the gun.
	startWindowMinutes domain.TimeOffset = 60

	// Controles in the first 60 km close at 20 km/h plus the start
	// window instead of the 15 km/h base rate, so a controle just past
	// the start cannot close before slower riders have cleared it.
	earlyControleLimitKm = 60.0
	earlyControleKmh     = 20.0
)

// closeOverride is one layer of the closing-time rules. An override either
// returns a definitive offset or reports that it has no opinion, which
// keeps the precedence explicit and each rule testable on its own instead
// of burying the order in nested conditionals.
type closeOverride func(distanceKm float64, brevet domain.BrevetDistance) (domain.TimeOffset, bool)

// closeOverrides in precedence order: the official finish allowance beats
// the relaxed start rules, which beat the minimum-speed base formula.
var closeOverrides = []closeOverride{
	finishAllowanceOverride,
	startWindowOverride,
	earlyControleOverride,
}

// finishAllowanceOverride replaces the derived closing time with the
// brevet's fixed overall limit whenever the controle sits at the nominal
// distance (including readings capped down to it). The allowance is
// defined authoritatively by regulation, so it wins over every formula.
func finishAllowanceOverride(distanceKm float64, brevet domain.BrevetDistance) (domain.TimeOffset, bool) {
	if distanceKm != brevet.Km() {
		return 0, false
	}
	return brevet.FinishAllowance(), true
}

func startWindowOverride(distanceKm float64, _ domain.BrevetDistance) (domain.TimeOffset, bool) {
	if distanceKm != 0 {
		return 0, false
	}
	return startWindowMinutes, true
}

// earlyControleOverride implements the relaxed closing rate for the first
// 60 km. At exactly 60 km it agrees with the base formula (3h at 20 km/h
// plus the hour equals 4h at 15 km/h), so the handoff back to the base
// algorithm is seamless; the calculator verifies that join on construction.
func earlyControleOverride(distanceKm float64, _ domain.BrevetDistance) (domain.TimeOffset, bool) {
	if distanceKm <= 0 || distanceKm > earlyControleLimitKm {
		return 0, false
	}
	return hoursToMinutes(distanceKm/earlyControleKmh) + startWindowMinutes, true
}

// CloseMinutes returns how many minutes after the start a controle at
// distanceKm closes. The base bound is the slowest permitted ride, the sum
// of covered/min hours over the overlapped segments, overlaid by the
// closeOverrides chain. The first definitive answer wins.
func (c *Calculator) CloseMinutes(distanceKm float64, brevet domain.BrevetDistance) (domain.TimeOffset, error) {
	km, err := c.checkDistance(distanceKm, brevet)
	if err != nil {
		return 0, err
	}
	for _, override := range closeOverrides {
		if offset, ok := override(km, brevet); ok {
			return offset, nil
		}
	}
	return c.closeMinutesAt(km), nil
}

func (c *Calculator) closeMinutesAt(distanceKm float64) domain.TimeOffset {
	hours := 0.0
	for _, s := range c.segmentsTo(distanceKm) {
		hours += s.coveredKm / s.band.minKmh
	}
	return hoursToMinutes(hours)
}
