package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/calculation"
	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/output"
)

const (
	cardWidth  = 44
	inputWidth = 24
	barWidth   = 30
)

// fieldOrder is the focus order of the inputs, card by card
var fieldOrder = []struct {
	kind domain.CalculatorKind
	key  string
}{
	{domain.CalculatorDiscount, domain.KeyOriginalPrice},
	{domain.CalculatorDiscount, domain.KeyDiscountPercent},
	{domain.CalculatorTip, domain.KeyBillAmount},
	{domain.CalculatorTip, domain.KeyTipPercent},
	{domain.CalculatorTip, domain.KeyDinerCount},
	{domain.CalculatorProgress, domain.KeyTargetValue},
	{domain.CalculatorProgress, domain.KeyCurrentValue},
}

// field is one editable calculator input
type field struct {
	kind  domain.CalculatorKind
	key   string
	input textinput.Model
}

// Model is the Bubble Tea model of the interactive calculators
type Model struct {
	// Dimensions
	width, height int

	// State
	config   domain.Configuration
	engine   *calculation.Engine
	fields   []field
	focused  int
	reports  map[domain.CalculatorKind]domain.CalculatorReport
	quitting bool
}

// NewModel creates a model seeded with the calculator inputs of config.
// A nil engine gets a silent default one.
func NewModel(config *domain.Configuration, engine *calculation.Engine) Model {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	m := Model{
		config:  *config,
		engine:  engine,
		reports: make(map[domain.CalculatorKind]domain.CalculatorReport, len(domain.CalculatorKinds)),
	}

	for _, f := range fieldOrder {
		text := domain.Copy[f.kind]
		input := textinput.New()
		input.Prompt = "› "
		input.Placeholder = text.Placeholders[f.key]
		input.CharLimit = 32
		input.Width = inputWidth
		input.SetValue(*inputTarget(&m.config.Calculators, f.key))
		m.fields = append(m.fields, field{kind: f.kind, key: f.key, input: input})
	}
	m.fields[0].input.Focus()

	for _, kind := range domain.CalculatorKinds {
		m.recompute(kind)
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "down", "enter":
			return m, m.focus(m.focused + 1)
		case "shift+tab", "up":
			return m, m.focus(m.focused - 1)
		}

		f := &m.fields[m.focused]
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		m.recompute(f.kind)
		return m, cmd
	}

	f := &m.fields[m.focused]
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

// focus moves the cursor to input i, wrapping around at both ends
func (m *Model) focus(i int) tea.Cmd {
	n := len(m.fields)
	i = ((i % n) + n) % n
	m.fields[m.focused].input.Blur()
	m.focused = i
	return m.fields[i].input.Focus()
}

// recompute copies the inputs of one calculator into the configuration and
// rebuilds its report
func (m *Model) recompute(kind domain.CalculatorKind) {
	for _, f := range m.fields {
		if f.kind == kind {
			*inputTarget(&m.config.Calculators, f.key) = f.input.Value()
		}
	}
	report, err := m.engine.BuildCalculatorReport(kind, &m.config)
	if err != nil {
		m.engine.Logger.Errorf("recompute %s: %v", kind, err)
		return
	}
	m.reports[kind] = report.Calculators[0]
}

// Report returns the latest state of a calculator
func (m Model) Report(kind domain.CalculatorKind) domain.CalculatorReport {
	return m.reports[kind]
}

// Focused returns the key of the input holding the cursor
func (m Model) Focused() string {
	return m.fields[m.focused].key
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cards := make([]string, 0, len(domain.CalculatorKinds))
	for _, kind := range domain.CalculatorKinds {
		cards = append(cards, m.renderCard(kind))
	}

	var body string
	if m.width >= len(cards)*(cardWidth+2) {
		body = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	var b strings.Builder
	b.WriteString(RenderTitle(m.config.Site.Title))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(RenderHelp("tab/↓ next field • shift+tab/↑ previous field • esc quit"))
	return b.String()
}

func (m Model) renderCard(kind domain.CalculatorKind) string {
	report := m.reports[kind]
	active := m.fields[m.focused].kind == kind

	var b strings.Builder
	b.WriteString(CardTitleStyle.Render(report.Title))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(report.Description))
	b.WriteString("\n\n")

	for _, f := range m.fields {
		if f.kind != kind {
			continue
		}
		b.WriteString(LabelStyle.Render(report.FieldLabel(f.key)))
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, row := range report.Rows {
		b.WriteString(LabelStyle.Render(row.Label + ": "))
		b.WriteString(ValueStyle.Render(row.Display()))
		b.WriteString("\n")
	}
	if report.HasProgressBar {
		b.WriteString(BarStyle.Render("[" + output.TextBar(report, barWidth) + "]"))
		b.WriteString("\n")
	}

	style := CardStyle
	if active {
		style = FocusedCardStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

// inputTarget returns the configuration field backing an input key
func inputTarget(in *domain.CalculatorInputs, key string) *string {
	switch key {
	case domain.KeyOriginalPrice:
		return &in.Discount.OriginalPrice
	case domain.KeyDiscountPercent:
		return &in.Discount.DiscountPercent
	case domain.KeyBillAmount:
		return &in.Tip.BillAmount
	case domain.KeyTipPercent:
		return &in.Tip.TipPercent
	case domain.KeyDinerCount:
		return &in.Tip.DinerCount
	case domain.KeyTargetValue:
		return &in.Progress.TargetValue
	case domain.KeyCurrentValue:
		return &in.Progress.CurrentValue
	}
	panic("tui: unknown input key " + key)
}
