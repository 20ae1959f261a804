package si

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisons(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Metres(1852), Metres(1852))
	assert.Less(t, Metres(1), Metres(2))
	assert.Less(t, Kelvin(273.15), Kelvin(288.15))
	assert.Less(t, Pascals(100), Pascals(101_325))

	// NaN follows IEEE-754: never equal to itself.
	nan := MetresPerSecond(math.NaN())
	assert.False(t, nan == nan)
}

// Each quantity must encode as a bare JSON number and decode back equal, so
// callers can embed one as a single numeric field.
func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("metres", func(t *testing.T) {
		t.Parallel()
		b, err := json.Marshal(Metres(1852))
		require.NoError(t, err)
		assert.Equal(t, "1852", string(b))

		var m Metres
		require.NoError(t, json.Unmarshal(b, &m))
		assert.Equal(t, Metres(1852), m)
	})

	t.Run("kelvin in a struct field", func(t *testing.T) {
		t.Parallel()
		type report struct {
			OAT Kelvin `json:"oat_kelvin"`
		}
		b, err := json.Marshal(report{OAT: 288.15})
		require.NoError(t, err)
		assert.JSONEq(t, `{"oat_kelvin":288.15}`, string(b))

		var r report
		require.NoError(t, json.Unmarshal(b, &r))
		assert.Equal(t, Kelvin(288.15), r.OAT)
	})

	t.Run("rejects junk", func(t *testing.T) {
		t.Parallel()
		var m Metres
		assert.Error(t, json.Unmarshal([]byte(`"junk"`), &m))
	})
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"metres", Metres(1852).String(), "1852m"},
		{"metres per second", MetresPerSecond(51.444).String(), "51.444m/s"},
		{"acceleration", StandardGravity.String(), "9.80665m/s²"},
		{"kelvin", Kelvin(288.15).String(), "288.15K"},
		{"pascals", Pascals(101_325).String(), "101325Pa"},
		{"kilograms", Kilograms(79_015).String(), "79015kg"},
		{"density", SeaLevelDensity.String(), "1.225kg/m³"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestISAReferenceValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Pascals(101_325), SeaLevelPressure)
	assert.Equal(t, Kelvin(288.15), SeaLevelTemperature)
	assert.Equal(t, KilogramsPerCubicMetre(1.225), SeaLevelDensity)
	assert.Equal(t, MetresPerSecondSquared(9.806_65), StandardGravity)
}
