package chart

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadWKT reads a file holding one POINT or MULTIPOINT per line, e.g.
// "MULTIPOINT (1 2, 3 4)". A third coordinate goes to the size channel and
// a fourth to the color channel. Blank lines and lines starting with # are
// skipped.
func LoadWKT(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	d := Dataset{Name: path}
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pts, err := ParseWKT(line)
		if err != nil {
			return Dataset{}, errors.New("wkt line " + strconv.Itoa(n+1) + ": " + err.Error())
		}
		d.Points = append(d.Points, pts...)
	}
	if len(d.Points) == 0 {
		return Dataset{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

// ParseWKT parses POINT(x y) and MULTIPOINT(x y, ...). MULTIPOINT members may
// also be wrapped in their own parentheses.
func ParseWKT(wkt string) ([]Point, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	if !strings.HasPrefix(up, "POINT") && !strings.HasPrefix(up, "MULTIPOINT") {
		return nil, errors.New("unsupported wkt type")
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, errors.New("wkt: invalid")
	}
	block := strings.NewReplacer("(", " ", ")", " ").Replace(s[i+1 : j])
	var pts []Point
	// split by comma into tuples "x y [size [color]]"
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			continue
		}
		var vals [4]float64
		for k := 0; k < len(parts) && k < 4; k++ {
			v, err := strconv.ParseFloat(parts[k], 64)
			if err != nil {
				return nil, err
			}
			vals[k] = v
		}
		pts = append(pts, Point{X: vals[0], Y: vals[1], Size: vals[2], Color: vals[3]})
	}
	if len(pts) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return pts, nil
}
