package ports

import (
	"brevet-controle-service/internal/domain"
	"time"
)

// Port: the boundary the transport layers (HTTP handlers, CLI) call to
// turn raw controle readings into arrival windows. It keeps those layers
// unaware of the concrete calculator and lets handler tests substitute a
// stub.
type ControleScheduler interface {
	// Window computes both bounds of one controle's arrival window.
	Window(raw float64, unit domain.Unit, brevet domain.BrevetDistance, start time.Time) (domain.ControleWindow, error)

	// Card computes the windows for every controle of one brevet.
	Card(raws []float64, unit domain.Unit, brevet domain.BrevetDistance, start time.Time) ([]domain.ControleWindow, error)
}
