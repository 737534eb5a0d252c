package internals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-travel-server/refdata"
)

func ptr[T any](v T) *T {
	return &v
}

func TestComputeDistanceLondonParis(t *testing.T) {
	d, err := ComputeDistance("LHR", "CDG")
	require.NoError(t, err)
	assert.Equal(t, 347.0, d)
}

func TestComputeDistanceUsesMeanEarthRadius(t *testing.T) {
	// 6378.1 km would give 347.4 and 3978.8
	d, err := ComputeDistance("lhr", "cdg")
	require.NoError(t, err)
	assert.Equal(t, 347.0, d)

	d, err = ComputeDistance("JFK", "LAX")
	require.NoError(t, err)
	assert.Equal(t, 3974.3, d)
	assert.Equal(t, refdata.HaulMedium, HaulType(d))
}

func TestComputeDistanceIsSymmetric(t *testing.T) {
	pairs := [][2]string{{"LHR", "CDG"}, {"JFK", "LAX"}, {"SYD", "AKL"}, {"GRU", "NRT"}, {"MAD", "BCN"}}
	for _, p := range pairs {
		ab, err := ComputeDistance(p[0], p[1])
		require.NoError(t, err)
		ba, err := ComputeDistance(p[1], p[0])
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "%s-%s", p[0], p[1])
	}
}

func TestComputeDistanceUnknownAirport(t *testing.T) {
	_, err := ComputeDistance("LHR", "XXX")
	assert.ErrorIs(t, err, refdata.ErrAirportNotFound)
	_, err = ComputeDistance("", "CDG")
	assert.ErrorIs(t, err, refdata.ErrAirportNotFound)
}

func TestHaulTypeBoundaries(t *testing.T) {
	assert.Equal(t, refdata.HaulShort, HaulType(0))
	assert.Equal(t, refdata.HaulShort, HaulType(1499.9))
	assert.Equal(t, refdata.HaulMedium, HaulType(1500))
	assert.Equal(t, refdata.HaulMedium, HaulType(4000))
	assert.Equal(t, refdata.HaulLong, HaulType(4000.1))
}

func TestHaulTypeMonotonic(t *testing.T) {
	rank := map[string]int{refdata.HaulShort: 0, refdata.HaulMedium: 1, refdata.HaulLong: 2}
	prev := 0
	for d := 0.0; d < 20000; d += 50 {
		r := rank[HaulType(d)]
		assert.GreaterOrEqual(t, r, prev, "distance %v", d)
		prev = r
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.84, Round(1.836, 2))
	assert.Equal(t, 54.1, Round(54.132, 1))
	assert.Equal(t, 12.0, Round(11.5, 0))
}
