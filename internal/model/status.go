package model

import "time"

// DutyStatus is a driver duty status row on the log sheet grid.
type DutyStatus string

const (
	StatusOffDuty DutyStatus = "OFF_DUTY"
	StatusSleeper DutyStatus = "SLEEPER"
	StatusDriving DutyStatus = "DRIVING"
	StatusOnDuty  DutyStatus = "ON_DUTY"
)

// Valid reports whether s is a known duty status.
func (s DutyStatus) Valid() bool {
	switch s {
	case StatusOffDuty, StatusSleeper, StatusDriving, StatusOnDuty:
		return true
	}
	return false
}

// TripStatus is a duty-status interval recorded for a trip.
type TripStatus struct {
	ID        int64      `json:"-"`
	TripID    int64      `json:"-"`
	Status    DutyStatus `json:"status"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	Location  *string    `json:"location"`
}
