package chart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// LoadJSON reads a JSON array of objects. The keys x, y, size and color must
// hold numbers (size and color may be omitted); all other keys become fields.
// A top-level object is read as GeoJSON.
func LoadJSON(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return LoadGeoJSON(path)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Dataset{}, err
	}
	if len(raw) == 0 {
		return Dataset{}, errors.New("json: no points")
	}
	d := Dataset{Name: path}
	seen := map[string]bool{}
	for i, obj := range raw {
		var p Point
		for k, v := range obj {
			var dst *float64
			switch strings.ToLower(k) {
			case "x":
				dst = &p.X
			case "y":
				dst = &p.Y
			case "size":
				dst = &p.Size
			case "color", "colour":
				dst = &p.Color
			}
			if dst != nil {
				f, ok := v.(float64)
				if !ok {
					return Dataset{}, fmt.Errorf("json point %d: %q is not a number", i, k)
				}
				*dst = f
				continue
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
		if _, ok := obj["x"]; !ok {
			return Dataset{}, fmt.Errorf("json point %d: missing x", i)
		}
		if _, ok := obj["y"]; !ok {
			return Dataset{}, fmt.Errorf("json point %d: missing y", i)
		}
		d.Points = append(d.Points, p)
	}
	// map iteration order is random; keep the field list stable
	sort.Strings(d.Fields)
	return d, nil
}

func fieldString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}
