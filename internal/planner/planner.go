// Package planner derives the stops and duty-status intervals of a trip from its route.
package planner

import (
	"time"

	"tripapi/internal/model"
)

const (
	// MetersToMiles converts routing distances to statute miles.
	MetersToMiles = 0.000621371
	// FuelIntervalMiles is the distance covered between fuel stops.
	FuelIntervalMiles = 1000

	FuelStopMinutes    = 30
	PickupStopMinutes  = 60
	DropoffStopMinutes = 60

	offDutyHours = 4
	drivingHours = 2
)

// Input is what the planner needs to know about a trip.
type Input struct {
	Pickup         model.Coordinates
	Dropoff        model.Coordinates
	PickupAddress  *string
	DropoffAddress *string
	DistanceMeters float64
	Geometry       model.LineString
}

// Plan is the derived part of a trip.
type Plan struct {
	TotalDistanceMiles float64
	Stops              []model.Stop
	Statuses           []model.TripStatus
}

// Build derives stops and statuses for in. now anchors the status intervals.
func Build(in Input, now time.Time) Plan {
	miles := in.DistanceMeters * MetersToMiles
	return Plan{
		TotalDistanceMiles: miles,
		Stops:              Stops(miles, in.Geometry, in.Pickup, in.Dropoff),
		Statuses:           Statuses(now, in.PickupAddress, in.DropoffAddress),
	}
}

// FuelStopCount returns how many fuel stops a route of the given length needs.
func FuelStopCount(miles float64) int {
	if miles <= 0 {
		return 0
	}
	return int(miles / FuelIntervalMiles)
}

// FuelStops places FuelStopCount(miles) stops at evenly spaced vertices of the route.
// No stops are placed when the geometry has too few vertices to space them.
func FuelStops(miles float64, geometry model.LineString) []model.Stop {
	n := FuelStopCount(miles)
	coords := geometry.Coordinates
	if n == 0 || len(coords) <= n {
		return nil
	}

	step := len(coords) / (n + 1)
	stops := make([]model.Stop, 0, n)
	for i := 1; i <= n; i++ {
		p := geometry.Point(i * step)
		stops = append(stops, model.Stop{
			Type:            model.StopFuel,
			LocationLat:     p.Lat,
			LocationLon:     p.Lon,
			DurationMinutes: FuelStopMinutes,
		})
	}
	return stops
}

// Stops returns the pickup stop, the fuel stops and the dropoff stop, in that order, with Seq set.
func Stops(miles float64, geometry model.LineString, pickup, dropoff model.Coordinates) []model.Stop {
	fuel := FuelStops(miles, geometry)

	stops := make([]model.Stop, 0, len(fuel)+2)
	stops = append(stops, model.Stop{
		Type:            model.StopPickup,
		LocationLat:     pickup.Lat,
		LocationLon:     pickup.Lon,
		DurationMinutes: PickupStopMinutes,
	})
	stops = append(stops, fuel...)
	stops = append(stops, model.Stop{
		Type:            model.StopDropoff,
		LocationLat:     dropoff.Lat,
		LocationLon:     dropoff.Lon,
		DurationMinutes: DropoffStopMinutes,
	})

	for i := range stops {
		stops[i].Seq = i
	}
	return stops
}

// Statuses returns an off-duty interval at the pickup followed by a driving interval to the dropoff.
func Statuses(now time.Time, pickupAddress, dropoffAddress *string) []model.TripStatus {
	drivingStart := now.Add(offDutyHours * time.Hour)
	return []model.TripStatus{
		{
			Status:    model.StatusOffDuty,
			StartTime: now,
			EndTime:   drivingStart,
			Location:  pickupAddress,
		},
		{
			Status:    model.StatusDriving,
			StartTime: drivingStart,
			EndTime:   drivingStart.Add(drivingHours * time.Hour),
			Location:  dropoffAddress,
		},
	}
}
