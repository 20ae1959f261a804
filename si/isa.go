package si

// International Standard Atmosphere sea-level reference values
// (ICAO Doc 7488). Flight levels assume this atmosphere.
const (
	SeaLevelPressure    Pascals                = 101_325
	SeaLevelTemperature Kelvin                 = 288.15
	SeaLevelDensity     KilogramsPerCubicMetre = 1.225
	StandardGravity     MetresPerSecondSquared = 9.806_65
)
