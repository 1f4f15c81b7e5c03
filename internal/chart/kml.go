package chart

import (
	"encoding/xml"
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadKML reads Placemark points from a KML file. Coordinates are
// "lon,lat[,alt]"; altitude goes to the size channel. The placemark name
// is kept as a field.
func LoadKML(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}

	type kmlPoint struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		Name  string    `xml:"name"`
		Point *kmlPoint `xml:"Point"`
	}
	type kmlDoc struct {
		Placemarks []kmlPlacemark `xml:"Document>Placemark"`
		Top        []kmlPlacemark `xml:"Placemark"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Dataset{}, err
	}
	d := Dataset{Name: path, Fields: []string{"name"}}
	for _, pm := range append(doc.Top, doc.Placemarks...) {
		if pm.Point == nil {
			continue
		}
		// coordinates may contain multiple tuples separated by spaces
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			p := Point{X: lon, Y: lat, Fields: map[string]string{"name": strings.TrimSpace(pm.Name)}}
			if len(vals) > 2 {
				p.Size, _ = strconv.ParseFloat(strings.TrimSpace(vals[2]), 64)
			}
			d.Points = append(d.Points, p)
		}
	}
	if len(d.Points) == 0 {
		return Dataset{}, errors.New("kml: no points found")
	}
	return d, nil
}
