package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/punchclock/internal/app"
	"github.com/alexanderramin/punchclock/internal/cli/formatter"
)

// refreshInterval is how often the dashboard recomputes while idle.
const refreshInterval = time.Minute

// ── messages ─────────────────────────────────────────────────────────────────

type statusLoadedMsg struct {
	status *app.StatusResponse
	err    error
}

type punchDoneMsg struct {
	resp *app.PunchResponse
	err  error
}

type homeOfficeToggledMsg struct {
	on  bool
	err error
}

type tickMsg time.Time

// ── keys ─────────────────────────────────────────────────────────────────────

type dashboardKeyMap struct {
	Punch      key.Binding
	HomeOffice key.Binding
	Refresh    key.Binding
	Quit       key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Punch:      key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "punch")),
		HomeOffice: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home office")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Punch, k.HomeOffice, k.Refresh, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel is a live status screen. It refreshes every minute so the
// running session and today's total keep moving.
type dashboardModel struct {
	app     *App
	keys    dashboardKeyMap
	help    help.Model
	status  *app.StatusResponse
	message string
	err     error
	width   int
}

func newDashboardModel(a *App) dashboardModel {
	return dashboardModel{
		app:  a,
		keys: newDashboardKeyMap(),
		help: help.New(),
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.load(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m dashboardModel) load() tea.Cmd {
	a := m.app
	return func() tea.Msg {
		now := a.now()
		status, err := a.Status.GetStatus(context.Background(), app.StatusRequest{Now: &now})
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m dashboardModel) punch() tea.Cmd {
	a := m.app
	return func() tea.Msg {
		now := a.now()
		resp, err := a.Punches.Punch(context.Background(), app.PunchRequest{At: &now})
		return punchDoneMsg{resp: resp, err: err}
	}
}

func (m dashboardModel) toggleHomeOffice() tea.Cmd {
	a := m.app
	return func() tea.Msg {
		ctx := context.Background()
		current, err := a.Settings.Get(ctx)
		if err != nil {
			return homeOfficeToggledMsg{err: err}
		}
		on := !current.HomeOfficeActive
		s, err := a.Settings.Update(ctx, app.SettingsPatch{HomeOfficeActive: &on})
		if err != nil {
			return homeOfficeToggledMsg{err: err}
		}
		return homeOfficeToggledMsg{on: s.HomeOfficeActive}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Punch):
			return m, m.punch()
		case key.Matches(msg, m.keys.HomeOffice):
			return m, m.toggleHomeOffice()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		}
		return m, nil

	case statusLoadedMsg:
		m.status, m.err = msg.status, msg.err
		return m, nil

	case punchDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.message = formatter.FormatPunchResult(msg.resp)
		return m, m.load()

	case homeOfficeToggledMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		if msg.on {
			m.message = "Home office on"
		} else {
			m.message = "Home office off"
		}
		return m, m.load()

	case tickMsg:
		return m, tea.Batch(m.load(), tick())
	}

	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder
	switch {
	case m.status != nil:
		b.WriteString(formatter.FormatStatus(m.status, m.app.Config.DailyTargetMinutes))
	case m.err == nil:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	}
	if m.message != "" {
		b.WriteString("\n" + m.message + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func newWatchCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Aliases: []string{"dashboard"},
		Short:   "Live status screen with punch and home office keys",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("watch needs a terminal")
			}
			p := tea.NewProgram(newDashboardModel(a), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}
