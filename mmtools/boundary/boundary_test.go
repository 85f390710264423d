package boundary_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mendimap-tools/mmtools/boundary"
)

const provinceDoc = `[
  {"prov_name": "Gipuzkoa", "prov_code": "20", "geo_shape": {"type": "Polygon", "coordinates": [[[-2.3, 43.0], [-1.9, 43.0], [-1.9, 43.3], [-2.3, 43.0]]]}},
  {"prov_name": "Navarra", "prov_code": "31", "geo_shape": {"type": "Polygon", "coordinates": [[[-2.0, 42.5], [-1.0, 42.5], [-1.0, 43.1], [-2.0, 42.5]]]}}
]`

const worldDoc = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"NAME": "Japan"}, "geometry": {"type": "MultiPolygon", "coordinates": [[[[139.0, 35.0], [140.0, 35.0], [140.0, 36.0], [139.0, 35.0]]]]}}
  ]
}`

func TestParseProvinceDocument(t *testing.T) {
	require := require.New(t)

	doc, err := boundary.Parse([]byte(provinceDoc))
	require.NoError(err)
	require.Equal([]string{"Gipuzkoa", "Navarra"}, doc.Names())

	geom, err := doc.Shape("Gipuzkoa")
	require.NoError(err)
	require.Contains(string(geom), `"Polygon"`)
}

func TestParseFeatureCollection(t *testing.T) {
	require := require.New(t)

	doc, err := boundary.Parse([]byte(worldDoc))
	require.NoError(err)
	require.Equal([]string{"Japan"}, doc.Names())

	geom, err := doc.Shape("Japan")
	require.NoError(err)
	require.Contains(string(geom), `"MultiPolygon"`)
}

func TestParseBOM(t *testing.T) {
	require := require.New(t)

	doc, err := boundary.Parse(append([]byte{0xef, 0xbb, 0xbf}, []byte(provinceDoc)...))
	require.NoError(err)

	_, err = doc.Shape("Navarra")
	require.NoError(err)
}

func TestShapeLookup(t *testing.T) {
	require := require.New(t)

	doc, err := boundary.Parse([]byte(provinceDoc))
	require.NoError(err)

	tests := map[string]struct {
		name  string
		found bool
	}{
		"exact_match":    {name: "Gipuzkoa", found: true},
		"unknown":        {name: "Araba", found: false},
		"case_sensitive": {name: "gipuzkoa", found: false},
		"no_trimming":    {name: " Gipuzkoa", found: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			geom, err := doc.Shape(tc.name)
			if tc.found {
				require.NoError(err)
				require.NotEmpty(geom)
				return
			}

			var lookupErr *boundary.LookupError
			require.ErrorAs(err, &lookupErr)
			require.Equal(tc.name, lookupErr.Name)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	require := require.New(t)

	tests := map[string]string{
		"empty":        "",
		"not_json":     "certainly not json",
		"broken_array": `[{"prov_name": "Gipuzkoa"`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := boundary.Parse([]byte(data))
			require.Error(err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "provinces.json")
	require.NoError(os.WriteFile(path, []byte(provinceDoc), 0644))

	doc, err := boundary.Load(path)
	require.NoError(err)
	require.Len(doc.Names(), 2)

	_, err = boundary.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(err)
}
