package chart

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Extensions lists the data file types Load understands.
var Extensions = []string{".csv", ".json", ".geojson", ".kml", ".wkt"}

// Supported reports whether Load can read path.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads a dataset, picking the decoder by file extension.
func Load(path string) (Dataset, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	case ".geojson":
		return LoadGeoJSON(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		return LoadWKT(path)
	default:
		return Dataset{}, fmt.Errorf("unsupported file: %s", ext)
	}
}
