package leaflet_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"mendimap-tools/mmtools/leaflet"
)

func renderToString(t *testing.T, m *leaflet.Map) string {
	var buf bytes.Buffer
	require.NoError(t, m.Render(&buf))
	return buf.String()
}

func TestRenderPage(t *testing.T) {
	require := require.New(t)

	m := leaflet.NewMap(leaflet.Options{Title: "Mendiak", CenterLat: 43.1733, CenterLng: -2.1369, Zoom: 10})
	page := renderToString(t, m)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(err)

	require.Equal("Mendiak", doc.Find("title").Text())
	require.Equal(1, doc.Find("div#map").Length())
	require.Equal(1, doc.Find(`link[rel="stylesheet"]`).Length())

	require.Contains(page, "center: [43.1733, -2.1369]")
	require.Contains(page, "zoom: 10")
	require.Contains(page, "tile.openstreetmap.org")
}

func TestRenderGroups(t *testing.T) {
	require := require.New(t)

	m := leaflet.NewMap(leaflet.Options{})
	shown := m.FeatureGroup("Gipuzkoa", true)
	hidden := m.FeatureGroup("Challenge (35)", false)
	m.AddLayerControl(false)

	require.Equal([]*leaflet.FeatureGroup{shown, hidden}, m.Groups())
	require.True(shown.Visible())
	require.False(hidden.Visible())

	page := renderToString(t, m)

	require.Contains(page, "var group0 = L.featureGroup();\ngroup0.addTo(map);")
	require.Contains(page, "var group1 = L.featureGroup();")
	require.NotContains(page, "group1.addTo(map);")

	require.Contains(page, `L.control.layers({"Base map": tiles}, {"Gipuzkoa": group0, "Challenge (35)": group1}, {collapsed: false}).addTo(map);`)
}

func TestRenderMarkerAndLabel(t *testing.T) {
	require := require.New(t)

	m := leaflet.NewMap(leaflet.Options{})
	g := m.FeatureGroup("Gipuzkoa", true)
	g.AddMarker(43.1844, -2.1069, leaflet.MarkerOptions{Color: "green", PopupHTML: "<b>Ernio</b>"})
	g.AddDivLabel(43.1844, -2.1069, "<div>Ernio</div>")

	require.Equal(2, g.Count())

	page := renderToString(t, m)

	require.Contains(page, `L.marker([43.1844, -2.1069], {icon: coloredIcon("green")})`)
	require.Contains(page, "maxWidth: 250")
	require.Contains(page, "L.divIcon({html:")

	// markup in popup/label strings must be JSON-escaped, never raw in the page
	require.NotContains(page, "<b>Ernio</b>")
	require.NotContains(page, "<div>Ernio</div>")
}

func TestRenderGeoJSON(t *testing.T) {
	require := require.New(t)

	geom := json.RawMessage(`{"type":"Polygon","coordinates":[[[-2.3,43.0],[-1.9,43.0],[-1.9,43.3],[-2.3,43.0]]]}`)

	m := leaflet.NewMap(leaflet.Options{})
	g := m.FeatureGroup("Gipuzkoa", true)
	g.AddGeoJSON(geom, leaflet.PathStyle{
		FillColor:   "blue",
		FillOpacity: 0.3,
		Color:       "blue",
		Opacity:     0.8,
		Weight:      3,
	})

	page := renderToString(t, m)

	// geometry passes through untouched
	require.Contains(page, string(geom))
	require.Contains(page, `"fillColor":"blue"`)
	require.Contains(page, `"fillOpacity":0.3`)
	require.Contains(page, `"weight":3`)
}

func TestRenderFitBounds(t *testing.T) {
	require := require.New(t)

	m := leaflet.NewMap(leaflet.Options{})
	page := renderToString(t, m)
	require.NotContains(page, "fitBounds")

	m.FitBounds(43.0, -2.4, 43.4, -1.8)
	page = renderToString(t, m)
	require.Contains(page, "map.fitBounds([[43, -2.4], [43.4, -1.8]]);")
}

func TestRenderScriptStaysInert(t *testing.T) {
	require := require.New(t)

	m := leaflet.NewMap(leaflet.Options{})
	g := m.FeatureGroup("</script><script>alert(1)</script>", true)
	g.AddMarker(0, 0, leaflet.MarkerOptions{Color: "red", PopupHTML: "</script><script>alert(1)</script>"})
	m.AddLayerControl(false)

	page := renderToString(t, m)
	require.NotContains(page, "<script>alert(1)")
}
