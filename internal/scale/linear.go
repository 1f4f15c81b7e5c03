// Package scale builds the data<->pixel axis mappings the brush uses to
// translate regions between the two spaces.
package scale

import "fmt"

// Linear is an affine, invertible map from the domain [D0, D1] (data values)
// to the range [R0, R1] (pixels). Either interval may be reversed.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear returns the scale mapping domain onto rng.
func NewLinear(domain, rng [2]float64) Linear {
	return Linear{D0: domain[0], D1: domain[1], R0: rng[0], R1: rng[1]}
}

// Forward maps a data value to pixels. A zero-width domain maps everything
// to the middle of the range.
func (s Linear) Forward(v float64) float64 {
	if s.D1 == s.D0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (v-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}

// Invert maps a pixel value back to data. A zero-width range maps
// everything to the middle of the domain.
func (s Linear) Invert(px float64) float64 {
	if s.R1 == s.R0 {
		return (s.D0 + s.D1) / 2
	}
	return s.D0 + (px-s.R0)/(s.R1-s.R0)*(s.D1-s.D0)
}

func (s Linear) String() string {
	return fmt.Sprintf("[%g:%g]->[%g:%g]", s.D0, s.D1, s.R0, s.R1)
}
