package nonsi

import (
	"fmt"

	"github.com/banshee-data/icao-units/si"
)

// Tonnes represents a mass in tonnes, used for aircraft mass and payload
// (ICAO Annex 5 Table 3-3).
type Tonnes float64

// KilogramsPerTonne is the mass of a tonne in kilograms, exact by
// definition.
const KilogramsPerTonne = 1000.0

// TonnesFromKilograms converts a mass in kilograms to tonnes.
func TonnesFromKilograms(m si.Kilograms) Tonnes {
	return Tonnes(float64(m) / KilogramsPerTonne)
}

// Kilograms converts a mass in tonnes to kilograms.
func (t Tonnes) Kilograms() si.Kilograms {
	return si.Kilograms(float64(t) * KilogramsPerTonne)
}

func (t Tonnes) String() string { return fmt.Sprintf("%gt", float64(t)) }
