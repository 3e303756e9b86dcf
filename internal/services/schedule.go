package services

import (
	"brevet-controle-service/internal/domain"
	"fmt"
	"time"
)

// OpenTime returns the clock time a controle opens: the ride start shifted
// by OpenMinutes for the normalized distance. The start time is treated as
// opaque; its zone offset is carried through untouched.
func (c *Calculator) OpenTime(raw float64, unit domain.Unit, brevet domain.BrevetDistance, start time.Time) (time.Time, error) {
	km, err := c.NormalizeDistance(raw, unit, brevet)
	if err != nil {
		return time.Time{}, fmt.Errorf("open time: %w", err)
	}
	offset, err := c.OpenMinutes(km, brevet)
	if err != nil {
		return time.Time{}, fmt.Errorf("open time: %w", err)
	}
	return offset.From(start), nil
}

// CloseTime returns the clock time a controle closes, the counterpart of
// OpenTime.
func (c *Calculator) CloseTime(raw float64, unit domain.Unit, brevet domain.BrevetDistance, start time.Time) (time.Time, error) {
	km, err := c.NormalizeDistance(raw, unit, brevet)
	if err != nil {
		return time.Time{}, fmt.Errorf("close time: %w", err)
	}
	offset, err := c.CloseMinutes(km, brevet)
	if err != nil {
		return time.Time{}, fmt.Errorf("close time: %w", err)
	}
	return offset.From(start), nil
}

// Window computes both bounds of a controle's arrival window in one call,
// the shape the web form consumes.
func (c *Calculator) Window(raw float64, unit domain.Unit, brevet domain.BrevetDistance, start time.Time) (domain.ControleWindow, error) {
	km, err := c.NormalizeDistance(raw, unit, brevet)
	if err != nil {
		return domain.ControleWindow{}, fmt.Errorf("controle window: %w", err)
	}

	opening, err := c.OpenMinutes(km, brevet)
	if err != nil {
		return domain.ControleWindow{}, fmt.Errorf("controle window: %w", err)
	}
	closing, err := c.CloseMinutes(km, brevet)
	if err != nil {
		return domain.ControleWindow{}, fmt.Errorf("controle window: %w", err)
	}

	return domain.ControleWindow{
		DistanceKm:  km,
		Brevet:      brevet,
		OpenOffset:  opening,
		CloseOffset: closing,
		Open:        opening.From(start),
		Close:       closing.From(start),
	}, nil
}

// Card computes the windows for every controle of one brevet, in the order
// given. It is a plain map over Window: each controle is scored
// independently, exactly as a brevet card is filled in row by row.
func (c *Calculator) Card(raws []float64, unit domain.Unit, brevet domain.BrevetDistance, start time.Time) ([]domain.ControleWindow, error) {
	windows := make([]domain.ControleWindow, 0, len(raws))
	for i, raw := range raws {
		w, err := c.Window(raw, unit, brevet, start)
		if err != nil {
			return nil, fmt.Errorf("card: controle %d at %g %s: %w", i+1, raw, unit, err)
		}
		windows = append(windows, w)
	}
	return windows, nil
}
