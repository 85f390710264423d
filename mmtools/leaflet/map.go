// Package leaflet models an interactive map document and serializes it to a
// single HTML page rendered in the browser with the Leaflet library. The
// document is populated fully, then written once; rendering does not mutate
// it.
package leaflet

// Options configure the base map document.
type Options struct {
	Title     string
	CenterLat float64
	CenterLng float64
	Zoom      int

	// Tile source. OpenStreetMap when left empty.
	TileURL         string
	TileName        string
	TileAttribution string
}

const (
	defaultTitle           = "Interactive map"
	defaultTileURL         = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	defaultTileName        = "Base map"
	defaultTileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

// Map is the root document: one tile source, feature groups in creation
// order and an optional layer visibility control.
type Map struct {
	opts Options

	groups           []*FeatureGroup
	control          bool
	controlCollapsed bool
	fit              *[4]float64 // minLat, minLng, maxLat, maxLng
}

// NewMap creates an empty map document.
func NewMap(opts Options) *Map {
	if opts.Title == "" {
		opts.Title = defaultTitle
	}
	if opts.TileURL == "" {
		opts.TileURL = defaultTileURL
	}
	if opts.TileName == "" {
		opts.TileName = defaultTileName
	}
	if opts.TileAttribution == "" {
		opts.TileAttribution = defaultTileAttribution
	}

	return &Map{opts: opts}
}

// FeatureGroup creates a named group, attaches it to the map and returns
// it. show controls the default visibility; hidden groups still appear in
// the layer control.
func (m *Map) FeatureGroup(name string, show bool) *FeatureGroup {
	g := &FeatureGroup{name: name, show: show}
	m.groups = append(m.groups, g)
	return g
}

// Groups returns the feature groups in creation order.
func (m *Map) Groups() []*FeatureGroup {
	return m.groups
}

// AddLayerControl attaches a layer visibility control.
func (m *Map) AddLayerControl(collapsed bool) {
	m.control = true
	m.controlCollapsed = collapsed
}

// FitBounds makes the rendered map fit the given viewport instead of the
// fixed center and zoom.
func (m *Map) FitBounds(minLat, minLng, maxLat, maxLng float64) {
	m.fit = &[4]float64{minLat, minLng, maxLat, maxLng}
}
