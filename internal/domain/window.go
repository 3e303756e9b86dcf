package domain

import "time"

// ControleWindow is the permitted arrival interval at a single controle:
// reach it before Open and the ride is too fast, after Close and it is too
// slow. The window is pure result data and carries the normalized distance
// it was computed for.
type ControleWindow struct {
	DistanceKm  float64
	Brevet      BrevetDistance
	OpenOffset  TimeOffset
	CloseOffset TimeOffset
	Open        time.Time
	Close       time.Time
}
