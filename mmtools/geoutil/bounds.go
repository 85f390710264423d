// Package geoutil provides lat/lng bounding box helpers.
package geoutil

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// LatLng is anything positioned on the globe in decimal degrees.
type LatLng interface {
	Lat() float64
	Lng() float64
}

// Point is a plain LatLng value.
type Point struct {
	Latitude, Longitude float64
}

// Lat returns the latitude in degrees
func (p Point) Lat() float64 {
	return p.Latitude
}

// Lng returns the longitude in degrees
func (p Point) Lng() float64 {
	return p.Longitude
}

// Bounds represents coordinate boundaries
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// Extend extends boundaries by the given decimal degrees
func (b Bounds) Extend(inc float64) Bounds {
	b.MinLat -= inc
	b.MinLng -= inc
	b.MaxLat += inc
	b.MaxLng += inc
	return b
}

// FromPoints accumulates the bounding rectangle of the given points.
// ok is false when the list is empty.
func FromPoints(pts []LatLng) (Bounds, bool) {
	if len(pts) == 0 {
		return Bounds{}, false
	}

	rect := s2.EmptyRect()
	for _, p := range pts {
		rect = rect.AddPoint(toS2LatLng(p))
	}

	return Bounds{
		MinLat: rect.Lo().Lat.Degrees(),
		MinLng: rect.Lo().Lng.Degrees(),
		MaxLat: rect.Hi().Lat.Degrees(),
		MaxLng: rect.Hi().Lng.Degrees(),
	}, true
}

func toS2LatLng(p LatLng) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(p.Lat()) * s1.Degree,
		Lng: s1.Angle(p.Lng()) * s1.Degree,
	}
}
