package mapbuild

import (
	"encoding/json"
	"fmt"
	"html"

	"mendimap-tools/mmtools/leaflet"
)

// Fixed polygon styling shared by every boundary overlay.
const (
	polyFillOpacity   = 0.3
	polyStrokeOpacity = 0.8
	polyWeight        = 3
)

const placeholderURL = "#"

// addMarkerAndLabel attaches the pin/label pair for one mountain: a colored
// interactive pin with a popup link, and a static text label 25px under it
// so the two never overlap. Two elements because Leaflet has no
// pin-with-subtitle primitive.
func addMarkerAndLabel(g *leaflet.FeatureGroup, lat, lng float64, name, url, color string) {
	g.AddMarker(lat, lng, leaflet.MarkerOptions{
		Color:     color,
		PopupHTML: popupHTML(name, url),
	})
	g.AddDivLabel(lat, lng, labelHTML(name))
}

// popupHTML builds the popup body. name and url come from the dataset and
// must never reach markup unescaped.
func popupHTML(name, url string) string {
	if url == "" {
		url = placeholderURL
	}
	return fmt.Sprintf(
		`<div style="text-align:center; font-weight:bold"><a href="%s" target="_blank" rel="noopener noreferrer" style="color:black">%s</a></div>`,
		html.EscapeString(url), html.EscapeString(name))
}

// labelHTML builds the static label under the pin.
func labelHTML(name string) string {
	return fmt.Sprintf(
		`<div style="pointer-events:none; text-align:center; transform: translate(-50%%, 25px); font-size:12px; font-weight:bold; color:black;">%s</div>`,
		html.EscapeString(name))
}

// addPolygon attaches one styled boundary overlay.
func addPolygon(g *leaflet.FeatureGroup, geom json.RawMessage, fill, stroke string) {
	g.AddGeoJSON(geom, leaflet.PathStyle{
		FillColor:   fill,
		FillOpacity: polyFillOpacity,
		Color:       stroke,
		Opacity:     polyStrokeOpacity,
		Weight:      polyWeight,
	})
}
