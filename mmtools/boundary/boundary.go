// Package boundary loads named polygon geometries from GeoJSON-style
// documents. Geometries are kept as raw JSON and handed to the renderer
// untouched; no normalization, re-projection or simplification happens here.
package boundary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LookupError reports a requested boundary name with no match in the
// document. The map cannot render a region layer without its boundary, so
// callers treat this as fatal.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no boundary named '%s' in document", e.Name)
}

// Document holds the named geometries of one boundary file, immutable
// after loading.
type Document struct {
	shapes []namedShape
}

type namedShape struct {
	name     string
	geometry json.RawMessage
}

// Provincial dataset shape: a JSON array of records.
type provinceRecord struct {
	ProvName string          `json:"prov_name"`
	GeoShape json.RawMessage `json:"geo_shape"`
}

// Standard FeatureCollection shape.
type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Properties struct {
		Name string `json:"NAME"`
	} `json:"properties"`
	Geometry json.RawMessage `json:"geometry"`
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Load reads and parses the boundary file at the given path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse boundary file '%s': %w", path, err)
	}

	return doc, nil
}

// Parse understands two document shapes, detected from the top-level JSON
// token: an array of province records keyed by prov_name, or a
// FeatureCollection keyed by properties.NAME. The provincial dataset ships
// with a UTF-8 BOM, which is tolerated.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimSpace(bytes.TrimPrefix(data, utf8BOM))
	if len(data) == 0 {
		return nil, errors.New("empty document")
	}

	d := &Document{}

	if data[0] == '[' {
		var records []provinceRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		for _, rec := range records {
			d.shapes = append(d.shapes, namedShape{name: rec.ProvName, geometry: rec.GeoShape})
		}
		return d, nil
	}

	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	for _, ft := range fc.Features {
		d.shapes = append(d.shapes, namedShape{name: ft.Properties.Name, geometry: ft.Geometry})
	}
	return d, nil
}

// Shape returns the geometry stored under the exact given name.
func (d *Document) Shape(name string) (json.RawMessage, error) {
	for _, s := range d.shapes {
		if s.name == name {
			return s.geometry, nil
		}
	}
	return nil, &LookupError{Name: name}
}

// Names returns every boundary name in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.shapes))
	for i, s := range d.shapes {
		names[i] = s.name
	}
	return names
}
