package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripapi/internal/model"
)

func line(n int) model.LineString {
	coords := make([][2]float64, n)
	for i := range coords {
		coords[i] = [2]float64{-100 + float64(i), 30 + float64(i)/10}
	}
	return model.LineString{Type: "LineString", Coordinates: coords}
}

func strPtr(s string) *string { return &s }

func TestFuelStopCount(t *testing.T) {
	tests := []struct {
		miles float64
		want  int
	}{
		{0, 0},
		{-5, 0},
		{999.99, 0},
		{1000, 1},
		{2500, 2},
		{3000.1, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FuelStopCount(tt.miles), "miles=%v", tt.miles)
	}
}

func TestFuelStops(t *testing.T) {
	t.Run("evenly spaced vertices", func(t *testing.T) {
		geom := line(10)
		stops := FuelStops(2100, geom)
		require.Len(t, stops, 2)

		// step = 10 / 3 = 3, stops at indices 3 and 6
		assert.Equal(t, geom.Point(3).Lat, stops[0].LocationLat)
		assert.Equal(t, geom.Point(3).Lon, stops[0].LocationLon)
		assert.Equal(t, geom.Point(6).Lat, stops[1].LocationLat)
		for _, s := range stops {
			assert.Equal(t, model.StopFuel, s.Type)
			assert.Equal(t, FuelStopMinutes, s.DurationMinutes)
		}
	})

	t.Run("short route has none", func(t *testing.T) {
		assert.Empty(t, FuelStops(420, line(50)))
	})

	t.Run("too few vertices", func(t *testing.T) {
		assert.Empty(t, FuelStops(3500, line(3)))
	})

	t.Run("vertices just above count", func(t *testing.T) {
		geom := line(4)
		stops := FuelStops(3500, geom)
		require.Len(t, stops, 3)
		// step = 4 / 4 = 1
		assert.Equal(t, geom.Point(1).Lon, stops[0].LocationLon)
		assert.Equal(t, geom.Point(3).Lon, stops[2].LocationLon)
	})
}

func TestStops(t *testing.T) {
	pickup := model.Coordinates{Lat: 41.8781, Lon: -87.6298}
	dropoff := model.Coordinates{Lat: 34.0522, Lon: -118.2437}

	stops := Stops(2100, line(10), pickup, dropoff)
	require.Len(t, stops, 4)

	assert.Equal(t, model.StopPickup, stops[0].Type)
	assert.Equal(t, pickup.Lat, stops[0].LocationLat)
	assert.Equal(t, PickupStopMinutes, stops[0].DurationMinutes)
	assert.Equal(t, model.StopFuel, stops[1].Type)
	assert.Equal(t, model.StopFuel, stops[2].Type)
	assert.Equal(t, model.StopDropoff, stops[3].Type)
	assert.Equal(t, dropoff.Lon, stops[3].LocationLon)
	assert.Equal(t, DropoffStopMinutes, stops[3].DurationMinutes)

	for i, s := range stops {
		assert.Equal(t, i, s.Seq)
	}
}

func TestStatuses(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 15, 0, 0, time.UTC)
	statuses := Statuses(now, strPtr("Chicago, IL"), strPtr("Los Angeles, CA"))
	require.Len(t, statuses, 2)

	off := statuses[0]
	assert.Equal(t, model.StatusOffDuty, off.Status)
	assert.Equal(t, now, off.StartTime)
	assert.Equal(t, now.Add(4*time.Hour), off.EndTime)
	assert.Equal(t, "Chicago, IL", *off.Location)

	drv := statuses[1]
	assert.Equal(t, model.StatusDriving, drv.Status)
	assert.Equal(t, off.EndTime, drv.StartTime)
	assert.Equal(t, now.Add(6*time.Hour), drv.EndTime)
	assert.Equal(t, "Los Angeles, CA", *drv.Location)
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	in := Input{
		Pickup:         model.Coordinates{Lat: 1, Lon: 2},
		Dropoff:        model.Coordinates{Lat: 3, Lon: 4},
		DistanceMeters: 1_609_344,
		Geometry:       line(20),
	}

	plan := Build(in, now)

	assert.InDelta(t, 1000.0, plan.TotalDistanceMiles, 0.01)
	assert.Len(t, plan.Stops, 2+FuelStopCount(plan.TotalDistanceMiles))
	assert.Len(t, plan.Statuses, 2)
	assert.Nil(t, plan.Statuses[0].Location)
}
