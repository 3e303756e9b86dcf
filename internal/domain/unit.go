package domain

import (
	"fmt"
	"strings"
)

// Unit identifies the measurement unit of a raw controle distance.
type Unit string

const (
	UnitKm    Unit = "km"
	UnitMiles Unit = "mi"
)

// KmPerMile is the international mile in kilometres, exact by definition.
const KmPerMile = 1.609344

// ParseUnit maps user input onto a Unit. Accepts "km" and "mi" in any case,
// with surrounding whitespace ignored.
func ParseUnit(s string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case UnitKm:
		return UnitKm, nil
	case UnitMiles:
		return UnitMiles, nil
	}
	return "", fmt.Errorf("parse unit: %q is not km or mi", s)
}
