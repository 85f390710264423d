package leaflet

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FeatureGroup is a named, independently toggleable collection of map
// elements. Adding is purely additive; nothing is deduplicated.
type FeatureGroup struct {
	name     string
	show     bool
	elements []element
}

// Name returns the group name shown in the layer control.
func (g *FeatureGroup) Name() string {
	return g.name
}

// Visible reports the default visibility.
func (g *FeatureGroup) Visible() bool {
	return g.show
}

// Count returns the number of elements attached so far.
func (g *FeatureGroup) Count() int {
	return len(g.elements)
}

type element interface {
	appendJS(b *strings.Builder, group string)
}

// MarkerOptions style an interactive pin.
type MarkerOptions struct {
	// Color selects one of the stock colored pin icons (green, red, ...).
	Color string
	// PopupHTML is the popup body, embedded verbatim: escape data-sourced
	// text before building the fragment.
	PopupHTML     string
	PopupMaxWidth int
}

// AddMarker attaches an interactive pin.
func (g *FeatureGroup) AddMarker(lat, lng float64, opts MarkerOptions) {
	if opts.PopupMaxWidth == 0 {
		opts.PopupMaxWidth = 250
	}
	g.elements = append(g.elements, &marker{lat: lat, lng: lng, opts: opts})
}

// AddDivLabel attaches a non-interactive HTML fragment anchored at the
// given position.
func (g *FeatureGroup) AddDivLabel(lat, lng float64, html string) {
	g.elements = append(g.elements, &divLabel{lat: lat, lng: lng, html: html})
}

// PathStyle styles a GeoJSON overlay.
type PathStyle struct {
	FillColor   string
	FillOpacity float64
	Color       string
	Opacity     float64
	Weight      int
}

// AddGeoJSON attaches a styled GeoJSON overlay. The geometry is embedded
// untouched; structurally broken geometry surfaces in the browser, not
// here.
func (g *FeatureGroup) AddGeoJSON(geometry json.RawMessage, style PathStyle) {
	g.elements = append(g.elements, &geoJSON{geometry: geometry, style: style})
}

type marker struct {
	lat, lng float64
	opts     MarkerOptions
}

func (m *marker) appendJS(b *strings.Builder, group string) {
	fmt.Fprintf(b, "L.marker([%s, %s], {icon: coloredIcon(%s)})",
		num(m.lat), num(m.lng), jsString(m.opts.Color))
	if m.opts.PopupHTML != "" {
		fmt.Fprintf(b, ".bindPopup(%s, {maxWidth: %d})", jsString(m.opts.PopupHTML), m.opts.PopupMaxWidth)
	}
	fmt.Fprintf(b, ".addTo(%s);\n", group)
}

type divLabel struct {
	lat, lng float64
	html     string
}

func (l *divLabel) appendJS(b *strings.Builder, group string) {
	fmt.Fprintf(b, "L.marker([%s, %s], {icon: L.divIcon({html: %s, className: \"\", iconSize: null})}).addTo(%s);\n",
		num(l.lat), num(l.lng), jsString(l.html), group)
}

type geoJSON struct {
	geometry json.RawMessage
	style    PathStyle
}

func (p *geoJSON) appendJS(b *strings.Builder, group string) {
	style, _ := json.Marshal(map[string]interface{}{
		"fillColor":   p.style.FillColor,
		"fillOpacity": p.style.FillOpacity,
		"color":       p.style.Color,
		"opacity":     p.style.Opacity,
		"weight":      p.style.Weight,
	})
	fmt.Fprintf(b, "L.geoJSON(%s, {style: %s}).addTo(%s);\n", p.geometry, style, group)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// jsString renders s as a javascript string literal. JSON encoding escapes
// quotes, angle brackets and ampersands, so the literal stays inert inside
// the inline script block.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
