package model

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidCoordinates is returned when a "lat,lon" string cannot be parsed.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Coordinates is a WGS 84 position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ParseCoordinates parses a "lat,lon" string. Surrounding whitespace is ignored.
func ParseCoordinates(s string) (Coordinates, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinates{}, ErrInvalidCoordinates
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, ErrInvalidCoordinates
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, ErrInvalidCoordinates
	}
	c := Coordinates{Lat: lat, Lon: lon}
	if !c.Valid() {
		return Coordinates{}, ErrInvalidCoordinates
	}
	return c, nil
}

// Valid reports whether the position is within latitude/longitude bounds.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// LonLat returns the position in GeoJSON [lon, lat] order.
func (c Coordinates) LonLat() [2]float64 { return [2]float64{c.Lon, c.Lat} }

// String formats the position back into "lat,lon".
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// LineString is a GeoJSON LineString geometry. Coordinates are [lon, lat] pairs.
type LineString struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// Point returns the i-th vertex as Coordinates.
func (l LineString) Point(i int) Coordinates {
	p := l.Coordinates[i]
	return Coordinates{Lat: p[1], Lon: p[0]}
}
