package dto

import "time"

type WindowResponse struct {
	DistanceKm         float64   `json:"distance_km"`
	BrevetKm           int       `json:"brevet_km"`
	Open               time.Time `json:"open"`
	Close              time.Time `json:"close"`
	OpenOffsetMinutes  int       `json:"open_offset_minutes"`
	CloseOffsetMinutes int       `json:"close_offset_minutes"`
}

type CardRequest struct {
	BrevetKm  int       `json:"brevet_km"`
	Units     string    `json:"units"`
	Start     string    `json:"start"`
	Controles []float64 `json:"controles"`
}

type CardResponse struct {
	BrevetKm  int              `json:"brevet_km"`
	Start     time.Time        `json:"start"`
	Controles []WindowResponse `json:"controles"`
}
