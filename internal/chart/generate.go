package chart

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Generate returns n demo points in three loose clusters. The same seed
// always yields the same points.
func Generate(n int, seed uint64) Dataset {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	centers := [][2]float64{{25, 30}, {60, 70}, {80, 25}}
	d := Dataset{Name: "generated", Fields: []string{"id", "cluster"}}
	for i := range n {
		c := i % len(centers)
		x := centers[c][0] + rng.NormFloat64()*9
		y := centers[c][1] + rng.NormFloat64()*9
		d.Points = append(d.Points, Point{
			X:     clamp(x, 0, 100),
			Y:     clamp(y, 0, 100),
			Size:  math.Abs(rng.NormFloat64())*10 + 1,
			Color: clamp(y+rng.NormFloat64()*15, 0, 100),
			Fields: map[string]string{
				"id":      fmt.Sprintf("p%03d", i),
				"cluster": fmt.Sprintf("%c", 'A'+c),
			},
		})
	}
	return d
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
