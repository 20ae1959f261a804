package nonsi

import (
	"fmt"

	"github.com/banshee-data/icao-units/si"
)

// NauticalMiles represents a distance in nautical miles. Used in
// navigation, generally for distances in excess of 4000 m.
type NauticalMiles float64

// MetresPerNauticalMile is the length of a nautical mile in metres,
// exact by definition (ICAO Annex 5 Table 3-3).
const MetresPerNauticalMile = 1852.0

// NauticalMilesFromMetres converts a distance in metres to nautical miles.
func NauticalMilesFromMetres(m si.Metres) NauticalMiles {
	return NauticalMiles(float64(m) / MetresPerNauticalMile)
}

// Metres converts a distance in nautical miles to metres.
func (nm NauticalMiles) Metres() si.Metres {
	return si.Metres(float64(nm) * MetresPerNauticalMile)
}

func (nm NauticalMiles) String() string { return fmt.Sprintf("%gNM", float64(nm)) }

// Feet represents an altitude in feet. Used to report aircraft altitude
// below the transition altitude.
type Feet float64

// MetresPerFoot is the length of a foot in metres, exact by definition
// (ICAO Annex 5 Table 3-3).
const MetresPerFoot = 0.3048

// FeetFromMetres converts a length in metres to feet.
func FeetFromMetres(m si.Metres) Feet {
	return Feet(float64(m) / MetresPerFoot)
}

// Metres converts a length in feet to metres.
func (f Feet) Metres() si.Metres {
	return si.Metres(float64(f) * MetresPerFoot)
}

func (f Feet) String() string { return fmt.Sprintf("%gft", float64(f)) }
