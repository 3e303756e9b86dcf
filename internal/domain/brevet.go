package domain

import "fmt"

// BrevetDistance is one of the five nominal distances sanctioned by the
// Audax Club Parisien for brevets. The set is closed: any other length is
// rejected at this boundary before it can reach the calculators.
type BrevetDistance int

const (
	Brevet200  BrevetDistance = 200
	Brevet300  BrevetDistance = 300
	Brevet400  BrevetDistance = 400
	Brevet600  BrevetDistance = 600
	Brevet1000 BrevetDistance = 1000
)

// finishAllowances holds the official overall time limit per brevet, in
// minutes: 13h30, 20h, 27h, 40h and 75h. These are defined by regulation,
// not derived from the speed bands (the 200 km limit is famously 30 minutes
// looser than 200 km at 15 km/h would give).
var finishAllowances = map[BrevetDistance]TimeOffset{
	Brevet200:  810,
	Brevet300:  1200,
	Brevet400:  1620,
	Brevet600:  2400,
	Brevet1000: 4500,
}

// ParseBrevetDistance converts a kilometre figure into a BrevetDistance.
func ParseBrevetDistance(km int) (BrevetDistance, error) {
	b := BrevetDistance(km)
	if !b.Valid() {
		return 0, fmt.Errorf("parse brevet distance: %d km: %w", km, ErrInvalidBrevetDistance)
	}
	return b, nil
}

// Valid reports whether b is one of the five sanctioned distances.
func (b BrevetDistance) Valid() bool {
	_, ok := finishAllowances[b]
	return ok
}

// Km returns the nominal distance in kilometres.
func (b BrevetDistance) Km() float64 { return float64(b) }

// FinishAllowance returns the official overall time limit for the brevet.
// The lookup is only meaningful for a Valid distance.
func (b BrevetDistance) FinishAllowance() TimeOffset { return finishAllowances[b] }

// BrevetDistances lists the sanctioned distances in ascending order.
func BrevetDistances() []BrevetDistance {
	return []BrevetDistance{Brevet200, Brevet300, Brevet400, Brevet600, Brevet1000}
}
