// Package tui implements the interactive activity dashboard using
// Bubbletea's Elm architecture. It mirrors the two pages of the wearable's
// activity face: a day log browser and a histogram page with chart, median,
// min, and max views over a 12-hour or 12-day window.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/wrist-pulse/engine"
	"gitlab.com/tinyland/lab/wrist-pulse/store"
)

// Page identifies which page is currently shown.
type Page int

const (
	// PageDay browses today's running count and the committed day log.
	PageDay Page = iota
	// PageHistogram shows the 12-slot chart and its statistics views.
	PageHistogram
)

// StatView identifies which histogram-page view is active.
type StatView int

const (
	ViewChart StatView = iota
	ViewMedian
	ViewMin
	ViewMax
	statViewCount // sentinel for wrapping
)

// tickMsg triggers a periodic snapshot reload.
type tickMsg time.Time

// loadedMsg carries a freshly restored activity log, or the load error.
type loadedMsg struct {
	log *engine.Log
	err error
}

// Model is the top-level Bubbletea model for the activity dashboard.
type Model struct {
	store   *store.Store
	clock   engine.Clock
	logger  *slog.Logger
	refresh time.Duration

	log       *engine.Log
	page      Page
	view      StatView
	timeframe engine.Timeframe
	daysBack  int // 0 = today on the day page

	width      int
	height     int
	help       help.Model
	lastLoaded time.Time
	loadErr    error
	ready      bool
}

// New returns an initialized Model showing the day page.
func New(st *store.Store, clock engine.Clock, tf engine.Timeframe, refresh time.Duration, logger *slog.Logger) Model {
	return Model{
		store:     st,
		clock:     clock,
		logger:    logger,
		refresh:   refresh,
		log:       engine.NewLog(logger),
		timeframe: tf,
		help:      help.New(),
	}
}

// Init implements tea.Model: load the snapshot and start the refresh tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load, m.tick())
}

// tick schedules the next periodic reload.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// load reads the persisted snapshot into a fresh engine log.
func (m Model) load() tea.Msg {
	l := engine.NewLog(m.logger)
	snap, err := m.store.Load()
	if err != nil {
		return loadedMsg{log: l, err: err}
	}
	if snap != nil {
		if err := l.Restore(snap); err != nil {
			return loadedMsg{log: engine.NewLog(m.logger), err: err}
		}
	}
	return loadedMsg{log: l}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.load, m.tick())

	case loadedMsg:
		m.loadErr = msg.err
		if msg.log != nil {
			m.log = msg.log
			m.lastLoaded = time.Now()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.Refresh):
		return m, m.load

	case key.Matches(msg, keys.Page):
		if m.page == PageDay {
			m.page = PageHistogram
		} else {
			m.page = PageDay
			m.daysBack = 0
		}
		return m, nil

	case key.Matches(msg, keys.Older):
		if m.page == PageDay && m.daysBack < engine.NumDays {
			m.daysBack++
		}
		return m, nil

	case key.Matches(msg, keys.Newer):
		if m.page == PageDay && m.daysBack > 0 {
			m.daysBack--
		}
		return m, nil

	case key.Matches(msg, keys.View):
		if m.page == PageHistogram {
			m.view = (m.view + 1) % statViewCount
		}
		return m, nil

	case key.Matches(msg, keys.Timeframe):
		if m.page == PageHistogram {
			if m.timeframe == engine.TimeframeHourly {
				m.timeframe = engine.TimeframeDaily
			} else {
				m.timeframe = engine.TimeframeHourly
			}
		}
		return m, nil
	}

	return m, nil
}
