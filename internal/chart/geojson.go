package chart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// LoadGeoJSON reads the Point and MultiPoint geometries of a GeoJSON file as
// points with x = longitude and y = latitude. Numeric "size" and "color"
// properties feed those channels; other properties become fields. Lines and
// polygons have no place on a scatter plot and are skipped.
func LoadGeoJSON(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Dataset{}, err
	}
	d := Dataset{Name: path}
	seen := map[string]bool{}
	skipped := 0

	parsePoint := func(v any) (pt [2]float64, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				return [2]float64{lon, lat}, true
			}
		}
		return [2]float64{}, false
	}
	add := func(pt [2]float64, props map[string]any) {
		p := Point{X: pt[0], Y: pt[1]}
		for k, v := range props {
			if f, ok := v.(float64); ok {
				switch k {
				case "size":
					p.Size = f
					continue
				case "color", "colour":
					p.Color = f
					continue
				}
			}
			if p.Fields == nil {
				p.Fields = map[string]string{}
			}
			p.Fields[k] = fieldString(v)
			if !seen[k] {
				seen[k] = true
				d.Fields = append(d.Fields, k)
			}
		}
		d.Points = append(d.Points, p)
	}
	walkGeom := func(g map[string]any, props map[string]any) {
		switch gt, _ := g["type"].(string); gt {
		case "Point":
			if pt, ok := parsePoint(g["coordinates"]); ok {
				add(pt, props)
			}
		case "MultiPoint":
			arr, _ := g["coordinates"].([]any)
			for _, el := range arr {
				if pt, ok := parsePoint(el); ok {
					add(pt, props)
				}
			}
		default:
			skipped++
		}
	}
	walkFeature := func(f map[string]any) {
		props, _ := f["properties"].(map[string]any)
		if g, ok := f["geometry"].(map[string]any); ok {
			walkGeom(g, props)
		}
	}

	switch t, _ := raw["type"].(string); t {
	case "":
		return Dataset{}, errors.New("invalid geojson: missing type")
	case "Feature":
		walkFeature(raw)
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			if fm, ok := f.(map[string]any); ok {
				walkFeature(fm)
			}
		}
	default:
		walkGeom(raw, nil)
	}
	if len(d.Points) == 0 {
		return Dataset{}, fmt.Errorf("geojson: no points found (%d other geometries)", skipped)
	}
	sort.Strings(d.Fields)
	return d, nil
}
