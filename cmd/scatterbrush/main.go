package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"scatterbrush/internal/brush"
	"scatterbrush/internal/chart"
	"scatterbrush/internal/render"
	"scatterbrush/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "config file (.toml, .yaml, .yml or .json)")
		logPath    = flag.String("log", "", "append a debug log to this file")
		scheme     = flag.String("scheme", "", "color scheme: "+strings.Join(render.Schemes(), ", "))
		selection  = flag.String("select", "", `initial selection "x0 y0 x1 y1" in data units`)
		export     = flag.String("export", "", "write the plot to this file and exit")
		generate   = flag.Int("n", 300, "number of generated points when no data file is given")
		seed       = flag.Uint64("seed", 1, "seed for generated points")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: scatterbrush [flags] [data file (%s)]\n", strings.Join(chart.Extensions, " "))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := chart.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = chart.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *scheme != "" {
		cfg.ColorScheme = *scheme
	}
	if *selection != "" {
		sel, err := brush.ParseSelection(*selection)
		if err != nil {
			return err
		}
		if sel != nil {
			cfg.Selection = []float64{sel.X0, sel.Y0, sel.X1, sel.Y1}
		}
	}

	logger := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	brush.SetLogger(logger)

	var (
		data chart.Dataset
		path string
	)
	if flag.NArg() > 0 {
		path = flag.Arg(0)
		var err error
		if data, err = chart.Load(path); err != nil {
			return err
		}
	} else {
		data = chart.Generate(*generate, *seed)
	}

	if *export != "" {
		return exportFile(cfg, data, *export)
	}

	m := tui.New(tui.Options{Config: cfg, Data: data, Path: path, Logger: logger})
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

// exportFile writes the plot without starting the terminal UI. With an
// initial selection the points outside it are dimmed, unless the brush
// cannot be mounted on the plot, which is then written as is.
func exportFile(cfg chart.Config, data chart.Dataset, path string) error {
	var selected []bool
	if s := cfg.Selection; len(s) == 4 {
		if cfg.Width == 0 || cfg.Height == 0 {
			cfg.Width, cfg.Height = int(cfg.Export.Width), int(cfg.Export.Height)
		}
		res, err := render.Render(cfg, data.Points)
		if err != nil {
			return err
		}
		ctrl := brush.New(nil)
		if err := ctrl.Mount(res.Root, data.Points); err != nil {
			brush.Logger().Warn("export without selection", slog.Any("err", err))
			return render.Export(cfg, data.Points, nil, path)
		}
		if err := ctrl.SetSelection(brush.Selection{X0: s[0], Y0: s[1], X1: s[2], Y1: s[3]}); err != nil {
			return err
		}
		selected = make([]bool, len(data.Points))
		for i := range selected {
			selected[i] = ctrl.Selected(i)
		}
		brush.Logger().Info("export selection", slog.Int("selected", ctrl.Count()), slog.Int("points", len(data.Points)))
	}
	return render.Export(cfg, data.Points, selected, path)
}
