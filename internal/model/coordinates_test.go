package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Coordinates
		wantErr bool
	}{
		{name: "plain", in: "40.7128,-74.0060", want: Coordinates{Lat: 40.7128, Lon: -74.006}},
		{name: "spaces", in: " 34.05 , -118.25 ", want: Coordinates{Lat: 34.05, Lon: -118.25}},
		{name: "bounds", in: "90,-180", want: Coordinates{Lat: 90, Lon: -180}},
		{name: "single value", in: "40.7128", wantErr: true},
		{name: "three values", in: "1,2,3", wantErr: true},
		{name: "not a number", in: "abc,1", wantErr: true},
		{name: "latitude out of range", in: "91,0", wantErr: true},
		{name: "longitude out of range", in: "0,181", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinates(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCoordinates)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoordinatesFormatting(t *testing.T) {
	c := Coordinates{Lat: 41.8781, Lon: -87.6298}
	assert.Equal(t, "41.8781,-87.6298", c.String())
	assert.Equal(t, [2]float64{-87.6298, 41.8781}, c.LonLat())
}

func TestLineStringPoint(t *testing.T) {
	l := LineString{Type: "LineString", Coordinates: [][2]float64{{-87.6, 41.8}, {-90.1, 38.6}}}
	assert.Equal(t, Coordinates{Lat: 38.6, Lon: -90.1}, l.Point(1))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, StopFuel.Valid())
	assert.False(t, StopType("Rest").Valid())
	assert.True(t, StatusSleeper.Valid())
	assert.False(t, DutyStatus("BREAK").Valid())
}
