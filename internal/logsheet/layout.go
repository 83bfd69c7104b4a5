package logsheet

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tripapi/internal/model"
)

// Point is a position in points measured from the top-left corner of the page.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Timeline places duty-status intervals on the 24-hour grid.
type Timeline struct {
	OriginX   float64                      `yaml:"origin_x"`
	HourWidth float64                      `yaml:"hour_width"`
	Rows      map[model.DutyStatus]float64 `yaml:"rows"`
}

// StopList is where the "<Type> at <minutes> min" lines are printed.
type StopList struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Step float64 `yaml:"step"`
}

// Layout holds every coordinate the renderer draws at. It matches the
// blank paper log template; a YAML file can override any subset of it.
type Layout struct {
	PageWidth      float64  `yaml:"page_width"`
	PageHeight     float64  `yaml:"page_height"`
	Date           Point    `yaml:"date"`
	Cycle          Point    `yaml:"cycle"`
	Distance       Point    `yaml:"distance"`
	CurrentAddress Point    `yaml:"current_address"`
	PickupAddress  Point    `yaml:"pickup_address"`
	DropoffAddress Point    `yaml:"dropoff_address"`
	WrapWidth      float64  `yaml:"wrap_width"`
	LineSpacing    float64  `yaml:"line_spacing"`
	Timeline       Timeline `yaml:"timeline"`
	Stops          StopList `yaml:"stops"`
}

// DefaultLayout returns the layout of the stock 800x600 log sheet.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:      800,
		PageHeight:     600,
		Date:           Point{X: 310, Y: 20},
		Cycle:          Point{X: 120, Y: 520},
		Distance:       Point{X: 100, Y: 90},
		CurrentAddress: Point{X: 150, Y: 50},
		PickupAddress:  Point{X: 250, Y: 400},
		DropoffAddress: Point{X: 450, Y: 50},
		WrapWidth:      250,
		LineSpacing:    15,
		Timeline: Timeline{
			OriginX:   63,
			HourWidth: 30,
			Rows: map[model.DutyStatus]float64{
				model.StatusOffDuty: 220,
				model.StatusDriving: 260,
				model.StatusSleeper: 285,
				model.StatusOnDuty:  335,
			},
		},
		Stops: StopList{X: 150, Y: 310, Step: 20},
	}
}

// LoadLayout reads a YAML override from path on top of DefaultLayout.
// An empty path yields the defaults.
func LoadLayout(path string) (Layout, error) {
	l := DefaultLayout()
	if path == "" {
		return l, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	if err := yaml.Unmarshal(b, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	if err := l.validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

func (l Layout) validate() error {
	if l.PageWidth <= 0 || l.PageHeight <= 0 {
		return errors.New("layout page size must be positive")
	}
	if l.Timeline.HourWidth <= 0 {
		return errors.New("layout timeline hour_width must be positive")
	}
	for status := range l.Timeline.Rows {
		if !status.Valid() {
			return fmt.Errorf("layout timeline has unknown status %q", status)
		}
	}
	return nil
}
