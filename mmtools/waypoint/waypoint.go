// Package waypoint exports dataset rows as GPX waypoints for GPS devices.
package waypoint

import (
	"github.com/tkrajina/gpxgo/gpx"

	"mendimap-tools/mmtools/dataset"
)

// GpxVersion GPX version
const GpxVersion = "1.1"

const gpxXMLNs = "http://www.topografix.com/GPX/1/1"
const gpxXMLNsXsi = "http://www.w3.org/2001/XMLSchema-instance"

// FromDataset builds a GPX document with one waypoint per row carrying
// valid coordinates. Rows the map would skip are skipped here too.
func FromDataset(ds *dataset.Dataset) *gpx.GPX {
	g := &gpx.GPX{
		XMLNs:        gpxXMLNs,
		XmlNsXsi:     gpxXMLNsXsi,
		XmlSchemaLoc: gpxXMLNs,

		Version: GpxVersion,
		Creator: "mendimap-tools",
		Name:    "Mountains",
	}

	for _, row := range ds.Rows() {
		lat, lon, ok := row.Coords()
		if !ok {
			continue
		}

		wpt := gpx.GPXPoint{
			Point: gpx.Point{
				Latitude:  lat,
				Longitude: lon,
			},
			Name:        row.Name(),
			Description: row.URL(),
		}
		if row.Climbed() {
			wpt.Comment = "climbed"
		}

		g.Waypoints = append(g.Waypoints, wpt)
	}

	return g
}
