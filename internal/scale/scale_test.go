package scale

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scatterbrush/internal/membership"
	"scatterbrush/internal/surface"
)

func TestLinear(t *testing.T) {
	s := NewLinear([2]float64{0, 100}, [2]float64{0, 800})
	assert.InDelta(t, 320.0, s.Forward(40), 1e-9)
	assert.InDelta(t, 40.0, s.Invert(320), 1e-9)

	y := NewLinear([2]float64{100, 800}, [2]float64{800, 100})
	assert.InDelta(t, 800.0, y.Forward(100), 1e-9)
	assert.InDelta(t, 100.0, y.Forward(800), 1e-9)
	assert.InDelta(t, 700.0, y.Forward(200), 1e-9)
	assert.InDelta(t, 200.0, y.Invert(700), 1e-9)
}

func TestLinearDegenerate(t *testing.T) {
	s := NewLinear([2]float64{5, 5}, [2]float64{10, 20})
	assert.Equal(t, 15.0, s.Forward(123))
	s = NewLinear([2]float64{0, 10}, [2]float64{7, 7})
	assert.Equal(t, 5.0, s.Invert(7))
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	scales := []Linear{
		NewLinear([2]float64{0, 100}, [2]float64{0, 800}),
		NewLinear([2]float64{100, 800}, [2]float64{800, 100}),
		NewLinear([2]float64{-3.5, 1e4}, [2]float64{12.25, 431}),
	}
	for _, s := range scales {
		for range 100 {
			lo, hi := min(s.D0, s.D1), max(s.D0, s.D1)
			v := lo + rng.Float64()*(hi-lo)
			assert.InDelta(t, v, s.Invert(s.Forward(v)), 1e-9*(1+hi-lo))
		}
	}
}

// padded is a native scale whose domain is wider than the data.
type padded struct{ Linear }

func TestExtract(t *testing.T) {
	plane := &surface.Node{
		Kind:   surface.KindSurface,
		Bounds: surface.Rect{W: 200, H: 100},
		// data [0,10] drawn into [0,200], data [0,10] drawn into [100,0]
		XScale: padded{NewLinear([2]float64{0, 10}, [2]float64{0, 200})},
		YScale: padded{NewLinear([2]float64{0, 10}, [2]float64{100, 0})},
	}
	pos := []membership.Position{{CX: 20, CY: 90}, {CX: 180, CY: 10}, {CX: 100, CY: 50}}

	p, err := Extract(plane, pos)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.X.D0, 1e-12)
	assert.InDelta(t, 9.0, p.X.D1, 1e-12)
	assert.Equal(t, [2]float64{20, 180}, [2]float64{p.X.R0, p.X.R1})
	assert.InDelta(t, 1.0, p.Y.D0, 1e-12)
	assert.InDelta(t, 9.0, p.Y.D1, 1e-12)
	assert.Equal(t, [2]float64{90, 10}, [2]float64{p.Y.R0, p.Y.R1})

	assert.InDelta(t, 5.0, p.X.Invert(100), 1e-12)
	assert.InDelta(t, 50.0, p.Y.Forward(5), 1e-12)
}

func TestExtractDegenerateAxis(t *testing.T) {
	plane := &surface.Node{
		Kind:   surface.KindSurface,
		Bounds: surface.Rect{W: 200, H: 100},
		XScale: NewLinear([2]float64{0, 10}, [2]float64{0, 200}),
		YScale: NewLinear([2]float64{0, 10}, [2]float64{100, 0}),
	}
	p, err := Extract(plane, []membership.Position{{CX: 50, CY: 50}})
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0, 200}, [2]float64{p.X.R0, p.X.R1})
	assert.Equal(t, [2]float64{100, 0}, [2]float64{p.Y.R0, p.Y.R1})
	assert.InDelta(t, 2.5, p.X.Invert(50), 1e-12)
}

func TestExtractErrors(t *testing.T) {
	_, err := Extract(&surface.Node{Kind: surface.KindSurface}, []membership.Position{{}})
	assert.ErrorIs(t, err, ErrNoNativeScale)

	_, err = Extract(nil, nil)
	assert.ErrorIs(t, err, ErrNoNativeScale)

	plane := &surface.Node{
		XScale: NewLinear([2]float64{0, 1}, [2]float64{0, 1}),
		YScale: NewLinear([2]float64{0, 1}, [2]float64{1, 0}),
	}
	_, err = Extract(plane, nil)
	assert.ErrorIs(t, err, ErrNoMarks)
}
