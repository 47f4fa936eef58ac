// Package tui provides the Bubble Tea menu interface.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/session"
)

type screen int

const (
	screenMenu screen = iota
	screenPrompt
	screenResult
	screenHistory
	screenHelp
)

type action int

const (
	actionPassword action = iota
	actionPassphrase
	actionAnalyze
)

type fieldKind int

const (
	kindInt fieldKind = iota
	kindBool
	kindText
)

type promptField struct {
	label      string
	kind       fieldKind
	defInt     int
	defBool    bool
	input      textinput.Model
	intValue   int
	boolValue  bool
	textValue  string
	defaultTxt string
}

var menuItems = []string{
	"Generate Password",
	"Generate Passphrase",
	"Analyze Password Strength",
	"View History",
	"Help",
	"Quit",
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle     = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// Model implements the Bubble Tea menu UI.
type Model struct {
	session  *session.Session
	defaults model.Config
	words    []string

	width  int
	height int

	screen    screen
	menuIndex int

	action     action
	fields     []promptField
	fieldIndex int
	promptErr  string

	resultTitle string
	resultValue string
	report      model.StrengthReport

	historyEntries []model.HistoryEntry
	errMsg         string
}

// NewModel constructs a menu model over the given session.
func NewModel(sess *session.Session, defaults model.Config, words []string) *Model {
	return &Model{session: sess, defaults: defaults, words: words}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenPrompt:
			return m.updatePrompt(msg)
		case screenResult, screenHistory, screenHelp:
			switch msg.Type {
			case tea.KeyEsc, tea.KeyEnter:
				m.screen = screenMenu
			default:
				if msg.String() == "q" {
					m.screen = screenMenu
				}
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "1", "2", "3", "4", "5", "6":
		m.menuIndex = int(msg.String()[0] - '1')
		return m.selectMenu()
	case "enter":
		return m.selectMenu()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) selectMenu() (tea.Model, tea.Cmd) {
	switch m.menuIndex {
	case 0:
		m.startPrompt(actionPassword)
	case 1:
		m.startPrompt(actionPassphrase)
	case 2:
		m.startPrompt(actionAnalyze)
	case 3:
		m.loadHistory()
		m.screen = screenHistory
	case 4:
		m.screen = screenHelp
	case 5:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) startPrompt(a action) {
	m.action = a
	m.fieldIndex = 0
	m.promptErr = ""
	switch a {
	case actionPassword:
		m.fields = []promptField{
			newIntField("Password length", m.defaults.Length),
			newBoolField("Include uppercase?", m.defaults.Upper),
			newBoolField("Include digits?", m.defaults.Digits),
			newBoolField("Include symbols?", m.defaults.Symbols),
			newBoolField("Exclude ambiguous chars (il1Lo0O)?", m.defaults.ExcludeAmbiguous),
		}
	case actionPassphrase:
		m.fields = []promptField{
			newIntField("Number of words", m.defaults.Words),
			newTextField("Separator", m.defaults.Separator),
		}
	case actionAnalyze:
		m.fields = []promptField{
			newTextField("Password to analyze", ""),
		}
	}
	m.fields[0].input.Focus()
	m.screen = screenPrompt
}

func newIntField(label string, def int) promptField {
	input := textinput.New()
	input.Placeholder = strconv.Itoa(def)
	input.CharLimit = 6
	return promptField{label: label, kind: kindInt, defInt: def, input: input, defaultTxt: strconv.Itoa(def)}
}

func newBoolField(label string, def bool) promptField {
	input := textinput.New()
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	input.Placeholder = hint
	input.CharLimit = 3
	return promptField{label: label, kind: kindBool, defBool: def, input: input, defaultTxt: hint}
}

func newTextField(label, def string) promptField {
	input := textinput.New()
	input.Placeholder = def
	return promptField{label: label, kind: kindText, input: input, defaultTxt: def}
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenMenu
		return m, nil
	case tea.KeyEnter:
		m.confirmField()
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.fieldIndex].input, cmd = m.fields[m.fieldIndex].input.Update(msg)
	return m, cmd
}

// confirmField validates the active prompt; invalid input re-prompts and
// never reaches the engine.
func (m *Model) confirmField() {
	field := &m.fields[m.fieldIndex]
	raw := field.input.Value()
	switch field.kind {
	case kindInt:
		n, err := parsePositiveInt(raw, field.defInt)
		if err != nil {
			m.promptErr = err.Error()
			field.input.SetValue("")
			return
		}
		field.intValue = n
	case kindBool:
		v, err := parseYesNo(raw, field.defBool)
		if err != nil {
			m.promptErr = err.Error()
			field.input.SetValue("")
			return
		}
		field.boolValue = v
	case kindText:
		value := raw
		if value == "" {
			value = field.defaultTxt
		}
		if m.action == actionAnalyze && value == "" {
			m.promptErr = "No password entered"
			return
		}
		field.textValue = value
	}

	m.promptErr = ""
	field.input.Blur()
	if m.fieldIndex < len(m.fields)-1 {
		m.fieldIndex++
		m.fields[m.fieldIndex].input.Focus()
		return
	}
	m.submit()
}

func (m *Model) submit() {
	ctx := context.Background()
	switch m.action {
	case actionPassword:
		spec := model.GenerationSpec{
			Length:           m.fields[0].intValue,
			Upper:            m.fields[1].boolValue,
			Digits:           m.fields[2].boolValue,
			Symbols:          m.fields[3].boolValue,
			ExcludeAmbiguous: m.fields[4].boolValue,
		}
		password, err := m.session.GeneratePassword(ctx, spec)
		if err != nil {
			m.promptErr = err.Error()
			return
		}
		m.showResult("Generated Password", password)
	case actionPassphrase:
		passphrase, err := m.session.GeneratePassphrase(ctx, m.words, m.fields[0].intValue, m.fields[1].textValue)
		if err != nil {
			m.promptErr = err.Error()
			return
		}
		m.showResult("Generated Passphrase", passphrase)
	case actionAnalyze:
		m.showResult("Analyzed Password", m.fields[0].textValue)
	}
}

func (m *Model) showResult(title, value string) {
	m.resultTitle = title
	m.resultValue = value
	m.report = m.session.Analyze(value)
	m.screen = screenResult
}

func (m *Model) loadHistory() {
	entries, err := m.session.History(context.Background(), session.DisplayLimit)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load history: %v", err)
		m.historyEntries = nil
		return
	}
	m.errMsg = ""
	m.historyEntries = entries
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.screen {
	case screenMenu:
		content = m.menuView()
	case screenPrompt:
		content = m.promptView()
	case screenResult:
		content = m.resultView()
	case screenHistory:
		content = m.historyView()
	case screenHelp:
		content = m.helpView()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) menuView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Password Generator"))
	b.WriteString("\n\n")
	for i, item := range menuItems {
		line := fmt.Sprintf("  [%d] %s", i+1, item)
		if i == m.menuIndex {
			line = selectedStyle.Render(fmt.Sprintf("▸ [%d] %s", i+1, item))
		} else {
			line = itemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓ move · enter select · q quit"))
	return b.String()
}

func (m *Model) promptView() string {
	var b strings.Builder
	switch m.action {
	case actionPassword:
		b.WriteString(titleStyle.Render("Generate Password"))
	case actionPassphrase:
		b.WriteString(titleStyle.Render("Generate Passphrase"))
	case actionAnalyze:
		b.WriteString(titleStyle.Render("Analyze Password Strength"))
	}
	b.WriteString("\n\n")
	for i := range m.fields {
		field := &m.fields[i]
		label := fmt.Sprintf("%s [%s]: ", field.label, field.defaultTxt)
		if field.defaultTxt == "" {
			label = field.label + ": "
		}
		switch {
		case i < m.fieldIndex:
			b.WriteString(mutedStyle.Render(label + field.answered()))
			b.WriteByte('\n')
		case i == m.fieldIndex:
			b.WriteString(selectedStyle.Render(label))
			b.WriteString(field.input.View())
			b.WriteByte('\n')
		}
	}
	if m.promptErr != "" {
		b.WriteByte('\n')
		b.WriteString(errorStyle.Render(m.promptErr))
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter confirm · esc back"))
	return b.String()
}

func (f *promptField) answered() string {
	switch f.kind {
	case kindInt:
		return strconv.Itoa(f.intValue)
	case kindBool:
		if f.boolValue {
			return "yes"
		}
		return "no"
	default:
		return f.textValue
	}
}

func (m *Model) resultView() string {
	lines := []string{
		m.resultTitle + ":",
		"",
		m.resultValue,
		"",
		fmt.Sprintf("Strength Score: %d/100", m.report.Score),
		scoreBar(m.report.Score, scoreBarWidth),
		fmt.Sprintf("Rating: %s", m.report.Rating),
	}
	if len(m.report.Feedback) > 0 {
		lines = append(lines, "", "Suggestions:")
		for _, tip := range m.report.Feedback {
			lines = append(lines, "  • "+tip)
		}
	}
	padded := padLines(lines)
	styled := make([]string, len(padded))
	for i, line := range padded {
		switch i {
		case 2:
			styled[i] = valueStyle.Render(line)
		case 5:
			styled[i] = ratingStyle(m.report.Rating).Render(line)
		case 6:
			styled[i] = ratingStyle(m.report.Rating).Render(line)
		default:
			styled[i] = itemStyle.Render(line)
		}
	}
	body := cardStyle.Render(strings.Join(styled, "\n"))
	return body + "\n" + footerStyle.Render("enter/esc back")
}

func (m *Model) historyView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Password History"))
	b.WriteString("\n\n")
	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteByte('\n')
	case len(m.historyEntries) == 0:
		b.WriteString(mutedStyle.Render("No passwords generated yet"))
		b.WriteByte('\n')
	default:
		for i, entry := range m.historyEntries {
			b.WriteString(itemStyle.Render(fmt.Sprintf("%d. %-10s %s", i+1, entry.Kind, entry.Value)))
			b.WriteByte('\n')
		}
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("enter/esc back"))
	return b.String()
}

func (m *Model) helpView() string {
	help := []string{
		"Password Generator",
		"  Generates random passwords from lowercase, uppercase,",
		"  digit, and symbol classes. Every enabled class is",
		"  guaranteed at least one character.",
		"",
		"Passphrase Generator",
		"  Joins distinct random words with a separator.",
		"",
		"Password Analyzer",
		"  Scores 0-100 from length, character variety, repetition,",
		"  and common patterns, with suggestions.",
		"",
		"Tips",
		"  • Use at least 12-16 characters",
		"  • Mix uppercase, lowercase, numbers, symbols",
		"  • Avoid personal information and reused passwords",
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(itemStyle.Render(strings.Join(help, "\n")))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("enter/esc back"))
	return b.String()
}
