package model

// StopType identifies why the truck halts.
type StopType string

const (
	StopFuel    StopType = "Fuel"
	StopPickup  StopType = "Pickup"
	StopDropoff StopType = "Dropoff"
)

// Valid reports whether t is a known stop type.
func (t StopType) Valid() bool {
	switch t {
	case StopFuel, StopPickup, StopDropoff:
		return true
	}
	return false
}

// Stop is a planned halt along a trip's route.
type Stop struct {
	ID              int64    `json:"id"`
	TripID          int64    `json:"-"`
	Seq             int      `json:"-"`
	Type            StopType `json:"type"`
	LocationLat     float64  `json:"location_lat"`
	LocationLon     float64  `json:"location_lon"`
	DurationMinutes int      `json:"duration_minutes"`
}
