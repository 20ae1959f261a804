// Package si defines the SI quantities used in air navigation and by the
// International Standard Atmosphere. See ICAO Annex 5 Chapter 3.
//
// Each unit is a distinct defined type over float64, so mixing units in
// arithmetic is a compile error while construction, comparison and JSON
// encoding behave exactly like the underlying number.
package si

import "fmt"

// Metres represents a distance in metres.
type Metres float64

// MetresPerSecond represents a speed in metres per second.
type MetresPerSecond float64

// MetresPerSecondSquared represents an acceleration in metres per second
// squared.
type MetresPerSecondSquared float64

// Kelvin represents a thermodynamic temperature.
type Kelvin float64

// Pascals represents a pressure in pascals.
type Pascals float64

// Kilograms represents a mass in kilograms.
type Kilograms float64

// KilogramsPerCubicMetre represents a density.
type KilogramsPerCubicMetre float64

func (m Metres) String() string                 { return fmt.Sprintf("%gm", float64(m)) }
func (v MetresPerSecond) String() string        { return fmt.Sprintf("%gm/s", float64(v)) }
func (a MetresPerSecondSquared) String() string { return fmt.Sprintf("%gm/s²", float64(a)) }
func (t Kelvin) String() string                 { return fmt.Sprintf("%gK", float64(t)) }
func (p Pascals) String() string                { return fmt.Sprintf("%gPa", float64(p)) }
func (m Kilograms) String() string              { return fmt.Sprintf("%gkg", float64(m)) }
func (d KilogramsPerCubicMetre) String() string { return fmt.Sprintf("%gkg/m³", float64(d)) }
