package services

import "brevet-controle-service/internal/domain"

// OpenMinutes returns how many minutes after the start a controle at
// distanceKm opens. A rider cannot legitimately arrive before covering
// every band segment at that band's maximum permitted speed, so the offset
// is the sum of covered/max hours over the overlapped segments, rounded
// once to the nearest minute. No special cases apply: the start controle
// simply sums zero segments and opens at the gun.
func (c *Calculator) OpenMinutes(distanceKm float64, brevet domain.BrevetDistance) (domain.TimeOffset, error) {
	km, err := c.checkDistance(distanceKm, brevet)
	if err != nil {
		return 0, err
	}
	return c.openMinutesAt(km), nil
}

func (c *Calculator) openMinutesAt(distanceKm float64) domain.TimeOffset {
	hours := 0.0
	for _, s := range c.segmentsTo(distanceKm) {
		hours += s.coveredKm / s.band.maxKmh
	}
	return hoursToMinutes(hours)
}
