package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFormats(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"cfg.toml", `
width = 320
color_scheme = "kindlmann"
size_range = [2, 6]
selection = [1, 2, 3, 4]

[margin]
left = 8

[export]
path = "out.png"
dim = 0.5
`},
		{"cfg.yaml", `
width: 320
color_scheme: kindlmann
size_range: [2, 6]
selection: [1, 2, 3, 4]
margin:
  left: 8
export:
  path: out.png
  dim: 0.5
`},
		{"cfg.json", `{"width": 320, "color_scheme": "kindlmann", "size_range": [2, 6],
"selection": [1, 2, 3, 4], "margin": {"left": 8}, "export": {"path": "out.png", "dim": 0.5}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeFile(t, tt.name, tt.body))
			require.NoError(t, err)
			assert.Equal(t, 320, cfg.Width)
			assert.Equal(t, "kindlmann", cfg.ColorScheme)
			assert.Equal(t, []float64{2, 6}, cfg.SizeRange)
			assert.Equal(t, []float64{1, 2, 3, 4}, cfg.Selection)
			assert.Equal(t, 8.0, cfg.Margin.Left)
			assert.Equal(t, "out.png", cfg.Export.Path)
			assert.Equal(t, 0.5, cfg.Export.Dim)
			// untouched keys keep their defaults
			assert.True(t, cfg.Legend)
			assert.Equal(t, "x", cfg.XLabel)
			assert.Equal(t, 480.0, cfg.Export.Width)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "cfg.ini", "width=1"))
	assert.ErrorContains(t, err, "unsupported")

	_, err = LoadConfig(writeFile(t, "cfg.toml", "width = ["))
	assert.ErrorContains(t, err, "cfg.toml")

	_, err = LoadConfig(writeFile(t, "cfg.yaml", "size_range: [3, 1]"))
	assert.ErrorContains(t, err, "size_range")

	_, err = LoadConfig("does/not/exist.toml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Selection = []float64{1, 2, 3}
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Width = -1
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Export.Dim = 2
	assert.Error(t, bad.Validate())
}
