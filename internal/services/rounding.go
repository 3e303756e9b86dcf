package services

import (
	"brevet-controle-service/internal/domain"
	"math"
)

// The official ACP calculator rounds halves away from zero everywhere it
// rounds at all. math.Round already behaves that way (unlike the IEEE
// half-to-even default some languages give), but the conversions are kept
// as named, tested primitives so the behaviour is pinned rather than
// assumed.

// hoursToMinutes converts a span of hours to whole minutes.
func hoursToMinutes(hours float64) domain.TimeOffset {
	return domain.TimeOffset(math.Round(hours * 60))
}

// roundKm rounds a kilometre reading to the nearest whole kilometre.
func roundKm(km float64) float64 { return math.Round(km) }

// floorKm truncates to a whole kilometre. Mile conversions always
// truncate; 100 mi is 160 km on a brevet card, never 161.
func floorKm(km float64) float64 { return math.Floor(km) }
