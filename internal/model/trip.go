package model

import "time"

// Trip is a planned haul from the driver's current location through a pickup to a dropoff.
// Locations are "lat,lon" strings as submitted; addresses are optional display text.
type Trip struct {
	ID                     int64        `json:"id"`
	CurrentLocation        string       `json:"current_location"`
	CurrentLocationAddress *string      `json:"current_location_address"`
	PickupLocation         string       `json:"pickup_location"`
	PickupAddress          *string      `json:"pickup_address"`
	DropoffLocation        string       `json:"dropoff_location"`
	DropoffAddress         *string      `json:"dropoff_address"`
	CurrentCycleUsed       float64      `json:"current_cycle_used"`
	TotalDistanceMiles     float64      `json:"total_distance_miles"`
	RouteGeometry          LineString   `json:"route_geometry"`
	CreatedAt              time.Time    `json:"created_at"`
	Stops                  []Stop       `json:"stops"`
	Statuses               []TripStatus `json:"statuses"`
}
