// Package mapbuild assembles the interactive mountain map: one toggleable
// layer per province plus the cross-cutting challenge layer, each carrying
// its boundary polygon and the markers of its peaks.
package mapbuild

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"mendimap-tools/mmtools/boundary"
	"mendimap-tools/mmtools/dataset"
	"mendimap-tools/mmtools/geoutil"
	"mendimap-tools/mmtools/leaflet"
)

// Map viewport, centered on Ernio.
const (
	CenterLat = 43.1733
	CenterLng = -2.1369
	Zoom      = 10
)

// Source selects which boundary document a region's geometry comes from.
type Source int

const (
	// SourceProvinces is the Spanish provincial dataset (prov_name keyed).
	SourceProvinces Source = iota
	// SourceWorld is the world FeatureCollection (properties.NAME keyed).
	SourceWorld
)

// Region is one named boundary rendered as its own toggleable layer.
// Markers land on the region whose name exactly matches their province
// cell.
type Region struct {
	Name   string
	Fill   string
	Stroke string
	Source Source
}

// Challenge configures the cross-cutting challenge layer. It reuses the
// geometry of its parent region; only the style differs.
type Challenge struct {
	LayerName string
	Region    string
	Color     string
}

// DefaultRegions mirror the current scope of the dataset.
func DefaultRegions() []Region {
	return []Region{
		{Name: "Gipuzkoa", Fill: "blue", Stroke: "blue", Source: SourceProvinces},
		{Name: "Navarra", Fill: "red", Stroke: "red", Source: SourceProvinces},
		{Name: "Japan", Fill: "red", Stroke: "red", Source: SourceWorld},
	}
}

// DefaultChallenge is the Gipuzkoa 35-summit challenge.
func DefaultChallenge() Challenge {
	return Challenge{LayerName: "Challenge (35)", Region: "Gipuzkoa", Color: "purple"}
}

// pinColor maps the climbed flag to a pin color. Total over both values;
// the flag is always coerced to bool before lookup.
var pinColor = map[bool]string{true: "green", false: "red"}

// Builder assembles map documents from loaded boundaries and dataset rows.
type Builder struct {
	Regions   []Region
	Challenge Challenge

	log *zap.Logger
}

// New returns a Builder with the default region set. A nil logger disables
// diagnostics.
func New(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}

	return &Builder{
		Regions:   DefaultRegions(),
		Challenge: DefaultChallenge(),
		log:       log,
	}
}

// Build populates a map document in one pass over the dataset. Boundary
// lookups fail the whole build; rows without valid coordinates and rows
// whose province matches no configured region are skipped silently, that
// tolerance is deliberate.
func (b *Builder) Build(provinces, world *boundary.Document, ds *dataset.Dataset) (*leaflet.Map, error) {
	m := leaflet.NewMap(leaflet.Options{
		Title:     "Mendiak",
		CenterLat: CenterLat,
		CenterLng: CenterLng,
		Zoom:      Zoom,
	})

	groups := make(map[string]*leaflet.FeatureGroup, len(b.Regions))
	geoms := make(map[string]json.RawMessage, len(b.Regions))
	for _, region := range b.Regions {
		doc := provinces
		if region.Source == SourceWorld {
			doc = world
		}

		geom, err := doc.Shape(region.Name)
		if err != nil {
			return nil, err
		}

		g := m.FeatureGroup(region.Name, true)
		addPolygon(g, geom, region.Fill, region.Stroke)
		groups[region.Name] = g
		geoms[region.Name] = geom
	}

	// The challenge layer has no boundary of its own: it reuses its parent
	// region's geometry with a different style.
	chalGeom, ok := geoms[b.Challenge.Region]
	if !ok {
		return nil, fmt.Errorf("challenge region '%s' is not a configured region", b.Challenge.Region)
	}
	chal := m.FeatureGroup(b.Challenge.LayerName, false)
	addPolygon(chal, chalGeom, b.Challenge.Color, b.Challenge.Color)

	markers := 0
	for _, row := range ds.Rows() {
		lat, lon, ok := row.Coords()
		if !ok {
			b.log.Debug("skipping row without valid coordinates", zap.String("name", row.Name()))
			continue
		}

		color := pinColor[row.Climbed()]

		group, ok := groups[row.Province()]
		if !ok {
			// Out-of-scope provinces in the dataset are fine, just not rendered.
			b.log.Debug("dropping row with unmapped province",
				zap.String("name", row.Name()), zap.String("province", row.Province()))
			continue
		}

		addMarkerAndLabel(group, lat, lon, row.Name(), row.URL(), color)
		markers++

		if row.Challenge() && row.Province() == b.Challenge.Region {
			addMarkerAndLabel(chal, lat, lon, row.Name(), row.URL(), color)
		}
	}

	m.AddLayerControl(false)
	b.log.Info("map assembled", zap.Int("layers", len(b.Regions)+1), zap.Int("markers", markers))

	return m, nil
}

// MarkerPoints returns the coordinates of every row Build would render,
// for viewport fitting.
func (b *Builder) MarkerPoints(ds *dataset.Dataset) []geoutil.LatLng {
	configured := make(map[string]bool, len(b.Regions))
	for _, region := range b.Regions {
		configured[region.Name] = true
	}

	var pts []geoutil.LatLng
	for _, row := range ds.Rows() {
		lat, lon, ok := row.Coords()
		if !ok || !configured[row.Province()] {
			continue
		}
		pts = append(pts, geoutil.Point{Latitude: lat, Longitude: lon})
	}
	return pts
}
