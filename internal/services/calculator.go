package services

import (
	"brevet-controle-service/internal/domain"
	"fmt"
)

// Calculator computes controle opening and closing offsets for ACP brevets.
//
// It holds only the read-only pace-band table, validated once on
// construction, so a single instance is safe for unsynchronized concurrent
// use by any number of callers. Every method is a finite, deterministic
// computation bounded by the fixed number of bands; nothing blocks, retries
// or touches I/O.
type Calculator struct {
	bands []paceBand
}

// NewCalculator builds a calculator over the regulation pace bands and
// verifies the structural rules the algorithms rely on.
func NewCalculator() (*Calculator, error) {
	c := &Calculator{bands: acpPaceBands}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("new calculator: %w", err)
	}
	return c, nil
}

// validate guards the properties that make close >= open hold by
// construction rather than by accident:
//   - bands are contiguous and ascending from zero,
//   - every band's minimum speed is strictly below its maximum,
//   - no finish allowance is tighter than the fastest permitted ride to
//     the finish,
//   - the early-controle closing rule joins the base formula at its
//     boundary within one minute.
func (c *Calculator) validate() error {
	if len(c.bands) == 0 {
		return fmt.Errorf("pace table is empty")
	}

	prevHigh := 0.0
	for i, b := range c.bands {
		if b.lowKm != prevHigh {
			return fmt.Errorf("pace band %d starts at %g km, want %g", i, b.lowKm, prevHigh)
		}
		if b.highKm <= b.lowKm {
			return fmt.Errorf("pace band %d spans %g-%g km", i, b.lowKm, b.highKm)
		}
		if b.minKmh <= 0 || b.maxKmh <= b.minKmh {
			return fmt.Errorf("pace band %d has speeds min=%g max=%g", i, b.minKmh, b.maxKmh)
		}
		prevHigh = b.highKm
	}

	for _, brevet := range domain.BrevetDistances() {
		if brevet.Km() > prevHigh {
			return fmt.Errorf("pace table ends at %g km, before the %d km brevet", prevHigh, brevet)
		}
		if allowance, fastest := brevet.FinishAllowance(), c.openMinutesAt(brevet.Km()); allowance < fastest {
			return fmt.Errorf("%d km finish allowance %v is under the fastest ride %v", brevet, allowance, fastest)
		}
	}

	early, _ := earlyControleOverride(earlyControleLimitKm, domain.Brevet200)
	if base := c.closeMinutesAt(earlyControleLimitKm); early < base-1 || early > base+1 {
		return fmt.Errorf("early-controle rule gives %v at %g km, base formula gives %v", early, earlyControleLimitKm, base)
	}

	return nil
}
