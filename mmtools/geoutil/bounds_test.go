package geoutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mendimap-tools/mmtools/geoutil"
)

func TestExtendBounds(t *testing.T) {
	require := require.New(t)
	bounds := geoutil.Bounds{
		MinLat: 43.0229,
		MaxLat: 43.3586,
		MinLng: -2.3581,
		MaxLng: -1.8175,
	}

	newBounds := bounds.Extend(0.01)

	require.Equal(43.0129, newBounds.MinLat)
	require.Equal(43.3686, newBounds.MaxLat)
	require.Equal(-2.3681, newBounds.MinLng)
	require.Equal(-1.8075, newBounds.MaxLng)
}

func TestFromPoints(t *testing.T) {
	require := require.New(t)

	pts := []geoutil.LatLng{
		geoutil.Point{Latitude: 43.0229, Longitude: -2.0887},
		geoutil.Point{Latitude: 43.3586, Longitude: -1.8614},
		geoutil.Point{Latitude: 43.1844, Longitude: -2.1069},
	}

	b, ok := geoutil.FromPoints(pts)
	require.True(ok)
	require.InDelta(43.0229, b.MinLat, 1e-9)
	require.InDelta(43.3586, b.MaxLat, 1e-9)
	require.InDelta(-2.1069, b.MinLng, 1e-9)
	require.InDelta(-1.8614, b.MaxLng, 1e-9)
}

func TestFromPointsEmpty(t *testing.T) {
	require := require.New(t)

	_, ok := geoutil.FromPoints(nil)
	require.False(ok)
}

func TestFromPointsSingle(t *testing.T) {
	require := require.New(t)

	b, ok := geoutil.FromPoints([]geoutil.LatLng{geoutil.Point{Latitude: 35.3606, Longitude: 138.7274}})
	require.True(ok)
	require.InDelta(35.3606, b.MinLat, 1e-9)
	require.InDelta(35.3606, b.MaxLat, 1e-9)
	require.InDelta(138.7274, b.MinLng, 1e-9)
	require.InDelta(138.7274, b.MaxLng, 1e-9)
}
