package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Row is one mountain record. Accessors coerce the raw cells; a cell under
// a column the row doesn't reach reads as empty.
type Row struct {
	index map[string]int
	cells []string
}

// Field returns the raw cell under the given column, "" when absent.
func (r Row) Field(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// Name returns the display name, possibly empty.
func (r Row) Name() string {
	return strings.TrimSpace(r.Field("name"))
}

// URL returns the external link, possibly empty.
func (r Row) URL() string {
	return strings.TrimSpace(r.Field("url"))
}

// Province returns the trimmed province name.
func (r Row) Province() string {
	return strings.TrimSpace(r.Field("province"))
}

// Climbed reports whether the peak was climbed. Absent or unrecognized
// values coerce to false.
func (r Row) Climbed() bool {
	return parseBool(r.Field("climbed"))
}

// Challenge reports whether the peak belongs to the challenge subset.
func (r Row) Challenge() bool {
	return parseBool(r.Field("challenge"))
}

// Coords returns the row coordinates. ok is false when either value is
// absent, unparsable, NaN or infinite; such rows never reach the map.
func (r Row) Coords() (lat, lon float64, ok bool) {
	lat, ok = parseFloat(r.Field("lat"))
	if !ok {
		return 0, 0, false
	}
	lon, ok = parseFloat(r.Field("lon"))
	if !ok {
		return 0, 0, false
	}
	return lat, lon, true
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseBool coerces dataset booleans. The file is maintained by hand, so
// "True", "FALSE", "1" and "yes" all show up.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
