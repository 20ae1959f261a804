package nonsi

import (
	"fmt"

	"github.com/banshee-data/icao-units/si"
)

// Celsius represents a temperature in degrees Celsius, the temperature
// scale used in aviation weather reports.
type Celsius float64

// ZeroCelsiusKelvin is the thermodynamic temperature of 0 °C. The Celsius
// and Kelvin scales differ by this fixed offset only.
const ZeroCelsiusKelvin = 273.15

// CelsiusFromKelvin converts a thermodynamic temperature to degrees
// Celsius.
func CelsiusFromKelvin(t si.Kelvin) Celsius {
	return Celsius(float64(t) - ZeroCelsiusKelvin)
}

// Kelvin converts a temperature in degrees Celsius to kelvin.
func (c Celsius) Kelvin() si.Kelvin {
	return si.Kelvin(float64(c) + ZeroCelsiusKelvin)
}

func (c Celsius) String() string { return fmt.Sprintf("%g°C", float64(c)) }
