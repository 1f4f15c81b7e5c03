package tui

import (
	"log/slog"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"scatterbrush/internal/brush"
	"scatterbrush/internal/chart"
	"scatterbrush/internal/render"
)

const (
	sidebarWidth = 28
	gutterWidth  = 7  // y tick labels
	legendWidth  = 9  // legend labels right of the canvas
	canvasZone   = "plot"

	headerHeight = 1
	footerHeight = 2 // status line and wrapped key help
)

// Options configure a Model.
type Options struct {
	Config chart.Config
	Data   chart.Dataset
	// Path is the file Data came from, empty for generated data.
	Path   string
	Logger *slog.Logger
}

// selection is the last result reported by the brush. It is shared by all
// copies of a Model.
type selection struct {
	points  []chart.Point
	sel     *brush.Selection
	changed bool
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string
	log    *slog.Logger

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	cfg  chart.Config
	data chart.Dataset

	// current rendering and the brush mounted on it
	res   *render.Result
	ctrl  *brush.Controller
	rec   *brush.Reconciler
	last  *selection
	zones *zone.Manager

	// canvas size in cells
	canvasW int
	canvasH int

	// pointer is held down on the canvas
	dragging bool

	// selection entry
	selectMode bool
	ta         textarea.Model

	// inspect popup
	inspectPopup string

	// hover state, in canvas pixels
	hovering bool
	hoverX   float64
	hoverY   float64
	hoverIdx int

	// selected points table
	showAttrs bool
	tbl       table.Model
}

func New(opts Options) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		status:      "scatterbrush ready",
		log:         opts.Logger,
		cfg:         opts.Config,
		data:        opts.Data,
		selPath:     opts.Path,
		last:        &selection{},
		zones:       zone.New(),
		hoverIdx:    -1,
	}
	if m.log == nil {
		m.log = slog.New(slog.DiscardHandler)
	}
	last := m.last
	m.ctrl = brush.New(nil)
	m.rec = brush.NewReconciler(m.ctrl, func(pts []chart.Point, sel *brush.Selection) {
		last.points, last.sel, last.changed = pts, sel, true
	})
	if s := opts.Config.Selection; len(s) == 4 {
		if _, err := m.rec.SetControlled(&brush.Selection{X0: s[0], Y0: s[1], X1: s[2], Y1: s[3]}); err != nil {
			m.status = "selection error: " + err.Error()
		}
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// selection entry setup
	m.ta = textarea.New()
	m.ta.Placeholder = "x0 y0 x1 y1 in data units. Enter to apply (empty clears); Esc to cancel."
	m.ta.CharLimit = 120
	m.ta.ShowLineNumbers = false
	m.ta.SetWidth(50)
	m.ta.SetHeight(1)
	// selected points table setup (columns follow the dataset fields)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Controller returns the brush driving the plot.
func (m Model) Controller() *brush.Controller { return m.ctrl }

// Reconciler returns the controlled-selection entry point.
func (m Model) Reconciler() *brush.Reconciler { return m.rec }
