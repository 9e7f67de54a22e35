package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plasmakit/plasmakit/internal/config"
	"github.com/plasmakit/plasmakit/internal/thomson"
	"github.com/plasmakit/plasmakit/internal/validate"
)

const (
	plotWidth  = 80
	plotHeight = 16
)

// adjustable parameters, cycled with tab
var paramNames = []string{"density", "Te", "Ti", "angle"}

// Model is the interactive spectrum viewer: a scenario plus the last
// computed spectrum. Every parameter change recomputes synchronously;
// the closed-form engine is fast enough that no ticking is needed.
type Model struct {
	cfg     *config.Config
	initial config.Config

	alpha float64
	skw   []float64
	warns []validate.Warning
	err   error

	selected int
	showHelp bool
}

// NewModel computes the initial spectrum for the given scenario.
func NewModel(cfg *config.Config) Model {
	m := Model{cfg: cfg, initial: *cfg}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(paramNames)
		case "up", "k":
			m.adjust(1)
			m.recompute()
		case "down", "j":
			m.adjust(-1)
			m.recompute()
		case "r":
			*m.cfg = m.initial
			m.recompute()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

// adjust nudges the selected parameter: multiplicative for density and
// temperatures, 5° steps for the scattering angle.
func (m *Model) adjust(dir int) {
	factor := 1.05
	if dir < 0 {
		factor = 0.95
	}
	switch paramNames[m.selected] {
	case "density":
		m.cfg.Plasma.Density *= factor
	case "Te":
		scale(m.cfg.Plasma.TeEV, factor)
	case "Ti":
		scale(m.cfg.Plasma.TiEV, factor)
	case "angle":
		m.cfg.Probe.AngleDeg += 5 * float64(dir)
		if m.cfg.Probe.AngleDeg < 10 {
			m.cfg.Probe.AngleDeg = 10
		}
		if m.cfg.Probe.AngleDeg > 170 {
			m.cfg.Probe.AngleDeg = 170
		}
		// an explicit scatter vector would shadow the angle
		m.cfg.Probe.Scatter = [3]float64{}
	}
}

func scale(vs []float64, factor float64) {
	for i := range vs {
		vs[i] *= factor
	}
}

func (m *Model) recompute() {
	in, err := m.cfg.ToInput()
	if err != nil {
		m.err = err
		return
	}
	alpha, skw, warns, err := thomson.SpectralDensity(in)
	if err != nil {
		m.err = err
		return
	}
	m.alpha, m.skw, m.warns, m.err = alpha, skw, warns, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("plasmakit spectrum viewer"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else {
		caption := fmt.Sprintf("S(k,w)/peak over %.1f-%.1f nm", m.cfg.Window.MinNM, m.cfg.Window.MaxNM)
		b.WriteString(graphStyle.Render(SpectrumPlot(m.skw, plotWidth, plotHeight, caption)))
		b.WriteString("\n")
	}

	b.WriteString(m.statsView())
	b.WriteString("\n")

	for _, w := range m.warns {
		b.WriteString(warnStyle.Render("warning: " + w.Message))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(helpStyle.Render("tab: select param  up/down: adjust  r: reset  q: quit"))
	} else {
		b.WriteString(helpStyle.Render("? for help"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) statsView() string {
	regime := "non-collective"
	if m.alpha > 1 {
		regime = "collective"
	}

	rows := []struct {
		name  string
		value string
	}{
		{"density", fmt.Sprintf("%.3e m^-3", m.cfg.Plasma.Density)},
		{"Te", fmt.Sprintf("%v eV", m.cfg.Plasma.TeEV)},
		{"Ti", fmt.Sprintf("%v eV", m.cfg.Plasma.TiEV)},
		{"angle", fmt.Sprintf("%.0f deg", m.cfg.Probe.AngleDeg)},
		{"alpha", fmt.Sprintf("%.4f (%s)", m.alpha, regime)},
		{"ions", strings.Join(m.cfg.Plasma.Ions, ", ")},
	}

	var b strings.Builder
	for _, row := range rows {
		label := labelStyle.Render(row.name)
		if row.name == paramNames[m.selected] {
			label = activeParamStyle.Render(fmt.Sprintf("%-14s", "> "+row.name))
		}
		b.WriteString(label)
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}
	return statsStyle.Render(b.String())
}
