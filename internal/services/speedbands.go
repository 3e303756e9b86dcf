package services

import "math"

// paceBand is one row of the ACP speed table: the slowest and fastest
// permitted average speeds for the kilometres between lowKm and highKm.
type paceBand struct {
	lowKm  float64
	highKm float64
	minKmh float64
	maxKmh float64
}

// acpPaceBands is the regulation table, identical for every brevet
// distance. The 11.428 km/h floor is what makes 1000 km at minimum pace
// work out to the official 75-hour limit.
var acpPaceBands = []paceBand{
	{lowKm: 0, highKm: 200, minKmh: 15, maxKmh: 34},
	{lowKm: 200, highKm: 400, minKmh: 15, maxKmh: 32},
	{lowKm: 400, highKm: 600, minKmh: 15, maxKmh: 30},
	{lowKm: 600, highKm: 1000, minKmh: 11.428, maxKmh: 28},
}

// segment is the portion of a controle distance that falls inside one band.
type segment struct {
	band      paceBand
	coveredKm float64
}

// segmentsTo splits distanceKm across the bands in ascending order. Each
// band with lowKm < distanceKm contributes min(distanceKm, highKm) - lowKm
// covered kilometres, so a long brevet rides the faster early bands in full
// and only the kilometres actually beyond a boundary fall under the slower
// rule. A zero distance yields no segments.
func (c *Calculator) segmentsTo(distanceKm float64) []segment {
	segs := make([]segment, 0, len(c.bands))
	for _, b := range c.bands {
		if distanceKm <= b.lowKm {
			break
		}
		segs = append(segs, segment{band: b, coveredKm: math.Min(distanceKm, b.highKm) - b.lowKm})
	}
	return segs
}
