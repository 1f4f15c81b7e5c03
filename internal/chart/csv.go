package chart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads points from a CSV file with a header row.
// Channel columns are matched case-insensitively: x, y, size|r, color|colour|c.
// Every other column is kept as a string field on each point.
func LoadCSV(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return Dataset{}, err
	}
	if len(recs) == 0 {
		return Dataset{}, errors.New("empty csv")
	}
	header := recs[0]
	idxX, idxY, idxSize, idxColor := -1, -1, -1, -1
	var extra []int
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x":
			if idxX == -1 {
				idxX = i
				continue
			}
		case "y":
			if idxY == -1 {
				idxY = i
				continue
			}
		case "size", "r":
			if idxSize == -1 {
				idxSize = i
				continue
			}
		case "color", "colour", "c":
			if idxColor == -1 {
				idxColor = i
				continue
			}
		}
		extra = append(extra, i)
	}
	if idxX == -1 || idxY == -1 {
		return Dataset{}, errors.New("csv: x/y columns not found")
	}
	d := Dataset{Name: path}
	for _, i := range extra {
		d.Fields = append(d.Fields, header[i])
	}
	num := func(row []string, i int) (float64, error) {
		if i == -1 {
			return 0, nil
		}
		if i >= len(row) {
			return 0, fmt.Errorf("column %q missing", header[i])
		}
		return strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
	}
	for line, row := range recs[1:] {
		var p Point
		var errs [4]error
		p.X, errs[0] = num(row, idxX)
		p.Y, errs[1] = num(row, idxY)
		p.Size, errs[2] = num(row, idxSize)
		p.Color, errs[3] = num(row, idxColor)
		if err := errors.Join(errs[:]...); err != nil {
			return Dataset{}, fmt.Errorf("csv line %d: %w", line+2, err)
		}
		if len(extra) > 0 {
			p.Fields = make(map[string]string, len(extra))
			for _, i := range extra {
				if i < len(row) {
					p.Fields[header[i]] = row[i]
				}
			}
		}
		d.Points = append(d.Points, p)
	}
	if len(d.Points) == 0 {
		return Dataset{}, errors.New("csv: no points parsed")
	}
	return d, nil
}
