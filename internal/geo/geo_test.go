package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	t.Parallel()

	t.Run("downtown Toronto to midtown is roughly 5.8 km", func(t *testing.T) {
		t.Parallel()

		d := DistanceKm(43.65, -79.38, 43.70, -79.40)
		assert.InDelta(t, 5.79, d, 0.1)
	})

	t.Run("identical points are zero distance", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, DistanceKm(43.65, -79.38, 43.65, -79.38))
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		t.Parallel()

		a := DistanceKm(51.5, -0.12, 48.85, 2.35)
		b := DistanceKm(48.85, 2.35, 51.5, -0.12)
		assert.InDelta(t, a, b, 1e-9)
	})

	t.Run("crosses the antimeridian correctly", func(t *testing.T) {
		t.Parallel()

		// ~222 km across the date line at the equator.
		d := DistanceKm(0, 179, 0, -179)
		assert.InDelta(t, 222.4, d, 1.0)
	})
}

func TestWithinRadius(t *testing.T) {
	t.Parallel()

	t.Run("point inside radius", func(t *testing.T) {
		t.Parallel()

		assert.True(t, WithinRadius(43.65, -79.38, 43.70, -79.40, 25))
	})

	t.Run("point outside radius", func(t *testing.T) {
		t.Parallel()

		assert.False(t, WithinRadius(43.65, -79.38, 43.70, -79.40, 5))
	})
}

func TestValidCoordinate(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidCoordinate(43.65, -79.38))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(90.1, 0))
	assert.False(t, ValidCoordinate(0, -180.5))
}

func TestFuzz(t *testing.T) {
	t.Parallel()

	t.Run("stays within the fuzz radius", func(t *testing.T) {
		t.Parallel()

		origin := orb.Point{-79.38, 43.65}
		for range 100 {
			fuzzed := Fuzz(origin, 500)
			d := DistanceKm(origin.Lat(), origin.Lon(), fuzzed.Lat(), fuzzed.Lon())
			assert.LessOrEqual(t, d, 0.55, "fuzzed point drifted too far")
		}
	})

	t.Run("zero radius is a no-op", func(t *testing.T) {
		t.Parallel()

		origin := orb.Point{-79.38, 43.65}
		fuzzed := Fuzz(origin, 0)
		assert.Equal(t, origin, fuzzed)
	})
}
