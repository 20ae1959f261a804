package nonsi

import (
	"fmt"

	"github.com/banshee-data/icao-units/si"
)

// Hectopascals represents a pressure in hectopascals, the unit used for
// altimeter settings and atmospheric pressure in aviation weather reports.
type Hectopascals float64

// PascalsPerHectopascal is the SI prefix scale between pascals and
// hectopascals.
const PascalsPerHectopascal = 100.0

// HectopascalsFromPascals converts a pressure in pascals to hectopascals.
func HectopascalsFromPascals(p si.Pascals) Hectopascals {
	return Hectopascals(float64(p) / PascalsPerHectopascal)
}

// Pascals converts a pressure in hectopascals to pascals.
func (h Hectopascals) Pascals() si.Pascals {
	return si.Pascals(float64(h) * PascalsPerHectopascal)
}

func (h Hectopascals) String() string { return fmt.Sprintf("%ghPa", float64(h)) }
