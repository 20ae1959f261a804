package nonsi

import (
	"fmt"

	"github.com/banshee-data/icao-units/si"
)

// Knots represents a speed in knots: nautical miles per hour.
type Knots float64

// MetresPerSecondPerKnot converts knots to metres per second. Derived from
// MetresPerNauticalMile over the seconds in an hour, which is more precise
// than the ICAO Annex 5 Table 3-3 figure of 0.514 444.
const MetresPerSecondPerKnot = MetresPerNauticalMile / 3600.0

// KnotsFromMetresPerSecond converts a speed in metres per second to knots.
func KnotsFromMetresPerSecond(v si.MetresPerSecond) Knots {
	return Knots(float64(v) / MetresPerSecondPerKnot)
}

// MetresPerSecond converts a speed in knots to metres per second.
func (k Knots) MetresPerSecond() si.MetresPerSecond {
	return si.MetresPerSecond(float64(k) * MetresPerSecondPerKnot)
}

func (k Knots) String() string { return fmt.Sprintf("%gkt", float64(k)) }

// FeetPerMinute represents a vertical speed, the rate of climb or descent
// reported by aircraft (ICAO Annex 5 Table 3-3).
type FeetPerMinute float64

// MetresPerSecondPerFootPerMinute converts feet per minute to metres per
// second: MetresPerFoot over the seconds in a minute, exactly 0.00508.
const MetresPerSecondPerFootPerMinute = MetresPerFoot / 60.0

// FeetPerMinuteFromMetresPerSecond converts a vertical speed in metres per
// second to feet per minute.
func FeetPerMinuteFromMetresPerSecond(v si.MetresPerSecond) FeetPerMinute {
	return FeetPerMinute(float64(v) / MetresPerSecondPerFootPerMinute)
}

// MetresPerSecond converts a vertical speed in feet per minute to metres
// per second.
func (f FeetPerMinute) MetresPerSecond() si.MetresPerSecond {
	return si.MetresPerSecond(float64(f) * MetresPerSecondPerFootPerMinute)
}

func (f FeetPerMinute) String() string { return fmt.Sprintf("%gft/min", float64(f)) }
