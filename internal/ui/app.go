package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gazetteer/internal/countries"
	"gazetteer/internal/listview"
	"gazetteer/internal/prefs"
	"gazetteer/internal/state"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *listview.Controller
	Store      *state.Store
	BaseURL    string
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	controller *listview.Controller
	store      *state.Store
	baseURL    string
	prefsPath  string

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Filter prompt state
	filtering      bool
	filterInput    textinput.Model
	filterFieldIdx int

	// Data state
	snapshot state.Snapshot
	table    table.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:        ctx,
		controller: opts.Controller,
		store:      opts.Store,
		baseURL:    opts.BaseURL,
		prefsPath:  prefsPath,
		theme:      GetTheme(themeName),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.opCmd(m.controller.Refresh),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initTable()
			m.initFilterInput()
		}
		m.ready = true
		m.refreshTable()
		return m, nil

	case opDoneMsg:
		m.snapshot = m.store.Snapshot()
		m.refreshTable()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.filterInput.View())
	} else {
		b.WriteString(m.renderCommandBar())
	}
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.filtering {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "/":
		m.filtering = true
		m.filterInput.SetValue(m.controller.State().FilterText)
		m.filterInput.Prompt = "/" + m.filterFieldLabel() + ": "
		m.filterInput.Focus()
		return m, nil

	case "f":
		// Cycle which field the next filter applies to
		m.filterFieldIdx = (m.filterFieldIdx + 1) % len(countries.Fields())
		return m, nil

	case "esc":
		// Clearing uses the same path as a too-short filter text
		if m.controller.State().FilterField != "" {
			field := m.filterField()
			return m, m.opCmd(func(ctx context.Context) {
				_ = m.controller.SetFilter(ctx, field, "")
			})
		}
		return m, nil

	case "[", "left", "h":
		return m, m.opCmd(m.controller.PrevPage)

	case "]", "right", "l":
		return m, m.opCmd(m.controller.NextPage)

	case "1", "2", "3", "4":
		fields := countries.Fields()
		field := fields[int(msg.String()[0]-'1')]
		return m, m.opCmd(func(ctx context.Context) {
			_ = m.controller.ToggleSort(ctx, field)
		})

	case "+", "=":
		return m, m.cyclePageSize(1)

	case "-", "_":
		return m, m.cyclePageSize(-1)

	case "r":
		return m, m.opCmd(m.controller.Refresh)

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.table.SetStyles(m.theme.TableStyles())
		m.savePrefs()
		return m, nil
	}

	// Remaining keys (up/down/j/k) drive row selection in the table.
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleFilterKey processes keyboard input while the filter prompt is open.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil

	case "enter":
		text := m.filterInput.Value()
		field := m.filterField()
		m.filtering = false
		m.filterInput.Blur()
		return m, m.opCmd(func(ctx context.Context) {
			_ = m.controller.SetFilter(ctx, field, text)
		})
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// cyclePageSize steps through the allowed page sizes and persists the choice.
func (m *Model) cyclePageSize(step int) tea.Cmd {
	sizes := listview.PageSizes()
	current := m.controller.State().PageSize
	idx := 0
	for i, s := range sizes {
		if s == current {
			idx = i
			break
		}
	}
	next := sizes[((idx+step)%len(sizes)+len(sizes))%len(sizes)]

	return m.opCmd(func(ctx context.Context) {
		if err := m.controller.SetPageSize(ctx, next); err == nil {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, PageSize: next})
		}
	})
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		PageSize: m.controller.State().PageSize,
	})
}

func (m Model) filterField() string {
	return countries.Fields()[m.filterFieldIdx]
}

func (m Model) filterFieldLabel() string {
	return columnLabels[m.filterFieldIdx]
}

func (m *Model) initTable() {
	t := table.New(
		table.WithColumns(tableColumns(m.width, m.controller.State())),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	t.SetStyles(m.theme.TableStyles())
	m.table = t
}

func (m *Model) initFilterInput() {
	ti := textinput.New()
	ti.Placeholder = "filter (2+ characters, shorter clears)"
	ti.CharLimit = 64
	ti.Width = 40
	m.filterInput = ti
}

// refreshTable rebuilds columns and rows from the latest snapshot.
func (m *Model) refreshTable() {
	if !m.ready {
		return
	}
	m.table.SetColumns(tableColumns(m.width, m.controller.State()))
	m.table.SetRows(tableRows(m.snapshot.Page.Items))
	m.table.SetHeight(m.tableHeight())
	m.table.SetWidth(m.width)
}

func (m Model) tableHeight() int {
	// Header, summary, and command bar each take one line; leave room for
	// the table's own header and border.
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

// renderHeader renders the title bar with endpoint and page position.
func (m Model) renderHeader() string {
	st := m.controller.State()

	parts := []string{
		m.theme.accentStyle().Render("gazetteer"),
		m.theme.mutedStyle().Render(m.baseURL),
	}

	totalPages := 0
	if st.PageSize > 0 {
		totalPages = (m.snapshot.Page.TotalCount + st.PageSize - 1) / st.PageSize
	}
	if totalPages > 0 {
		parts = append(parts, m.theme.mutedStyle().Render(
			fmt.Sprintf("page %d/%d", st.Page, totalPages)))
	}
	parts = append(parts, m.theme.mutedStyle().Render(fmt.Sprintf("size %d", st.PageSize)))

	if st.FilterField != "" {
		parts = append(parts, m.theme.accentStyle().Render(
			fmt.Sprintf("/%s:%s", st.FilterField, st.FilterText)))
	}

	if m.snapshot.IsOffline() {
		parts = append(parts, m.theme.dangerStyle().Render("OFFLINE"))
	} else if m.snapshot.LastError != nil {
		parts = append(parts, m.theme.dangerStyle().Render("ERROR"))
	}

	sep := m.theme.faintStyle().Render(" • ")
	return m.theme.headerStyle().Width(m.width).Render(strings.Join(parts, sep))
}

// renderSummary renders the entries line beneath the table.
func (m Model) renderSummary() string {
	summary := m.snapshot.Summary
	if summary == "" {
		summary = "Loading…"
	}
	return m.theme.mutedStyle().Padding(0, 1).Render(summary)
}

// renderCommandBar renders the key hints bar.
func (m Model) renderCommandBar() string {
	type cmd struct{ key, desc string }
	commands := []cmd{
		{"[/]", "Page"},
		{"/", "Filter " + m.filterFieldLabel()},
		{"f", "Field"},
		{"1-4", "Sort"},
		{"+/-", "Size"},
		{"r", "Refresh"},
		{"T", m.theme.Name},
		{"?", "Help"},
		{"q", "Quit"},
	}

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			m.theme.accentStyle().Bold(false).Render(c.key)+
				m.theme.faintStyle().Render(":")+
				m.theme.mutedStyle().Render(c.desc))
	}
	return m.theme.headerStyle().Width(m.width).Render(strings.Join(segments, "  "))
}

// Messages

type opDoneMsg struct{}

// Commands

// opCmd runs a controller operation off the UI loop and reports completion.
// Out-of-order completions are safe: the controller discards superseded
// responses, and the snapshot store always holds the newest render.
func (m Model) opCmd(op func(context.Context)) tea.Cmd {
	return func() tea.Msg {
		op(m.ctx)
		return opDoneMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
