package leaflet

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Colored pin icons, the stock leaflet-color-markers set.
const (
	iconBaseURL = "https://raw.githubusercontent.com/pointhi/leaflet-color-markers/master/img/"
	shadowURL   = "https://unpkg.com/leaflet@1.9.4/dist/images/marker-shadow.png"
)

var pageTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
{{.Script}}
</script>
</body>
</html>
`))

// Render serializes the document to a self-contained HTML page. All layer
// and marker data is inlined; only the Leaflet assets and tiles come from
// the network.
func (m *Map) Render(w io.Writer) error {
	return pageTemplate.Execute(w, map[string]interface{}{
		"Title":  m.opts.Title,
		"Script": template.JS(m.script()),
	})
}

func (m *Map) script() string {
	var b strings.Builder

	b.WriteString("function coloredIcon(color) {\n")
	b.WriteString("  return L.icon({\n")
	fmt.Fprintf(&b, "    iconUrl: %s + \"marker-icon-2x-\" + color + \".png\",\n", jsString(iconBaseURL))
	fmt.Fprintf(&b, "    shadowUrl: %s,\n", jsString(shadowURL))
	b.WriteString("    iconSize: [25, 41], iconAnchor: [12, 41], popupAnchor: [1, -34], shadowSize: [41, 41]\n")
	b.WriteString("  });\n")
	b.WriteString("}\n")

	fmt.Fprintf(&b, "var map = L.map(\"map\", {center: [%s, %s], zoom: %d});\n",
		num(m.opts.CenterLat), num(m.opts.CenterLng), m.opts.Zoom)
	fmt.Fprintf(&b, "var tiles = L.tileLayer(%s, {attribution: %s}).addTo(map);\n",
		jsString(m.opts.TileURL), jsString(m.opts.TileAttribution))

	overlays := make([]string, 0, len(m.groups))
	for i, g := range m.groups {
		v := fmt.Sprintf("group%d", i)
		fmt.Fprintf(&b, "var %s = L.featureGroup();\n", v)
		if g.show {
			fmt.Fprintf(&b, "%s.addTo(map);\n", v)
		}
		for _, e := range g.elements {
			e.appendJS(&b, v)
		}
		overlays = append(overlays, fmt.Sprintf("%s: %s", jsString(g.name), v))
	}

	if m.control {
		fmt.Fprintf(&b, "L.control.layers({%s: tiles}, {%s}, {collapsed: %t}).addTo(map);\n",
			jsString(m.opts.TileName), strings.Join(overlays, ", "), m.controlCollapsed)
	}

	if m.fit != nil {
		fmt.Fprintf(&b, "map.fitBounds([[%s, %s], [%s, %s]]);\n",
			num(m.fit[0]), num(m.fit[1]), num(m.fit[2]), num(m.fit[3]))
	}

	return b.String()
}
