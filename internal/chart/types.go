package chart

// Point is one plotted record. X and Y place the mark, Size and Color are
// encoded as glyph radius and fill. Fields carries any extra columns the
// caller loaded alongside the four channels.
type Point struct {
	X     float64
	Y     float64
	Size  float64
	Color float64

	Fields map[string]string
}

// Dataset is an ordered point sequence plus the names of its extra fields,
// in the order they appeared in the source.
type Dataset struct {
	Name   string
	Points []Point
	Fields []string
}

// Interval is a closed range of values.
type Interval struct {
	Min, Max float64
}

// Span returns Max-Min.
func (i Interval) Span() float64 { return i.Max - i.Min }

// Extent returns the range covered by one channel of pts.
func Extent(pts []Point, channel func(Point) float64) (Interval, bool) {
	if len(pts) == 0 {
		return Interval{}, false
	}
	v := channel(pts[0])
	iv := Interval{Min: v, Max: v}
	for _, p := range pts[1:] {
		v := channel(p)
		if v < iv.Min {
			iv.Min = v
		}
		if v > iv.Max {
			iv.Max = v
		}
	}
	return iv, true
}

// Channel accessors for Extent.
func XOf(p Point) float64     { return p.X }
func YOf(p Point) float64     { return p.Y }
func SizeOf(p Point) float64  { return p.Size }
func ColorOf(p Point) float64 { return p.Color }
