package nonsi

import (
	"fmt"
	"math"
)

// FlightLevel represents a pressure altitude in hundreds of feet under the
// standard atmosphere (si.SeaLevelPressure). Flight levels are quantized:
// FL 350 is 35 000 ft. A FlightLevel relates only to Feet; convert through
// Feet to reach metres.
type FlightLevel int

// FeetPerFlightLevel is the altitude step between consecutive flight
// levels.
const FeetPerFlightLevel = 100.0

// FlightLevelFromFeet converts an altitude in feet to the nearest flight
// level, rounding half away from zero. The conversion is lossy: anything
// off the 100 ft grid is quantized, with an error of at most 50 ft.
func FlightLevelFromFeet(f Feet) FlightLevel {
	return FlightLevel(math.Round(float64(f) / FeetPerFlightLevel))
}

// Feet converts a flight level to its exact altitude in feet.
func (fl FlightLevel) Feet() Feet {
	return Feet(float64(fl) * FeetPerFlightLevel)
}

func (fl FlightLevel) String() string { return fmt.Sprintf("FL%03d", int(fl)) }
