package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/kmsahu/genesim/internal/grn"
)

const historyCapacity = 600

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type liveParam struct {
	gene string
	name string // rule parameter name, or "alpha" for the decay rate
}

func (p liveParam) String() string { return p.gene + "." + p.name }

// Model drives the live circuit view: it steps the simulation on each
// tick and lets the user tune rule parameters and decay rates while the
// trajectories evolve.
type Model struct {
	motifName string
	stepper   *grn.Stepper
	genes     []*grn.Gene
	inputName string

	running   bool
	frameRate int

	histories map[string][]float64
	order     []string

	params   []liveParam
	selected int
	initial  map[string]float64
}

func NewModel(motifName string, circuit *grn.Circuit, cfg grn.Config, inputName string, frameRate int) (Model, error) {
	stepper, err := circuit.NewStepper(cfg)
	if err != nil {
		return Model{}, err
	}

	genes := circuit.Genes()
	order := make([]string, 0, len(genes)+1)
	order = append(order, inputName)
	histories := map[string][]float64{inputName: make([]float64, 0, historyCapacity)}
	for _, g := range genes {
		order = append(order, g.Name)
		histories[g.Name] = make([]float64, 0, historyCapacity)
	}

	params := make([]liveParam, 0)
	initial := make(map[string]float64)
	for _, g := range genes {
		if c, ok := g.Rule.(grn.Configurable); ok {
			names := make([]string, 0)
			for name := range c.GetParams() {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				p := liveParam{gene: g.Name, name: name}
				params = append(params, p)
				initial[p.String()] = c.GetParams()[name]
			}
		}
		p := liveParam{gene: g.Name, name: "alpha"}
		params = append(params, p)
		initial[p.String()] = g.Decay
	}

	if frameRate <= 0 {
		frameRate = 30
	}

	return Model{
		motifName: motifName,
		stepper:   stepper,
		genes:     genes,
		inputName: inputName,
		running:   true,
		frameRate: frameRate,
		histories: histories,
		order:     order,
		params:    params,
		initial:   initial,
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.record(m.inputName, m.stepper.Input(m.inputName))
	m.stepper.Step()
	for _, g := range m.genes {
		m.record(g.Name, m.stepper.Value(g.Name))
	}
}

func (m *Model) record(name string, v float64) {
	h := append(m.histories[name], v)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	m.histories[name] = h
}

func (m *Model) reset() {
	m.stepper.Reset()
	for name := range m.histories {
		m.histories[name] = m.histories[name][:0]
	}
	for _, g := range m.genes {
		if c, ok := g.Rule.(grn.Configurable); ok {
			for name := range c.GetParams() {
				key := liveParam{gene: g.Name, name: name}.String()
				c.SetParam(name, m.initial[key])
			}
		}
		g.Decay = m.initial[liveParam{gene: g.Name, name: "alpha"}.String()]
	}
}

func (m *Model) cycleParam() {
	if len(m.params) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.params)
}

func (m *Model) paramValue(p liveParam) float64 {
	for _, g := range m.genes {
		if g.Name != p.gene {
			continue
		}
		if p.name == "alpha" {
			return g.Decay
		}
		if c, ok := g.Rule.(grn.Configurable); ok {
			return c.GetParams()[p.name]
		}
	}
	return 0
}

func (m *Model) adjustParam(factor float64) {
	if len(m.params) == 0 {
		return
	}
	p := m.params[m.selected]
	for _, g := range m.genes {
		if g.Name != p.gene {
			continue
		}
		if p.name == "alpha" {
			g.Decay *= factor
			return
		}
		if c, ok := g.Rule.(grn.Configurable); ok {
			c.SetParam(p.name, c.GetParams()[p.name]*factor)
		}
		return
	}
}

func (m Model) View() string {
	var charts strings.Builder
	for _, name := range m.order {
		h := m.histories[name]
		if len(h) < 2 {
			continue
		}
		chart := asciigraph.Plot(h,
			asciigraph.Height(6),
			asciigraph.Width(70),
			asciigraph.Caption(name),
		)
		charts.WriteString(graphStyle.Render(chart) + "\n")
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.motifName)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1f", m.stepper.Time())) + "\n")
	for _, g := range m.genes {
		s.WriteString(labelStyle.Render(g.Name) + valueStyle.Render(fmt.Sprintf("%.4f", m.stepper.Value(g.Name))) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	if len(m.params) > 0 {
		for i, p := range m.params {
			val := m.paramValue(p)
			initial := m.initial[p.String()]
			barWidth := 10
			ratio := 0.5
			if initial != 0 {
				ratio = val / (2.0 * initial)
			}
			if ratio > 1 {
				ratio = 1
			} else if ratio < 0 {
				ratio = 0
			}
			filled := int(ratio * float64(barWidth))
			bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
			line := fmt.Sprintf("%-12s %s %.3f", p.String(), bar, val)
			if i == m.selected {
				s.WriteString(activeParamStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + valueStyle.Render(line) + "\n")
			}
		}
	} else {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}

	s.WriteString(helpStyle.Render("\n────────────────────\nSP:Pause R:Reset Q:Quit\nTab:Select ↑↓:Tune"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, charts.String(), statsView)
}
