package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/attune/internal/cli/formatter"
	"github.com/alexanderramin/attune/internal/domain"
	"github.com/alexanderramin/attune/internal/service"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type decisionsMsg []*domain.RoutingDecision

type watchErrMsg struct{ err error }

type pollTickMsg time.Time

// watchModel polls the decision log and re-renders it on an interval.
type watchModel struct {
	decisions service.DecisionService
	userID    string
	limit     int
	interval  time.Duration

	spin    spinner.Model
	rows    []*domain.RoutingDecision
	loaded  bool
	lastErr error
}

func newWatchModel(decisions service.DecisionService, userID string, limit int, interval time.Duration) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)

	return watchModel{
		decisions: decisions,
		userID:    userID,
		limit:     limit,
		interval:  interval,
		spin:      sp,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetch())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.fetch()
		}

	case decisionsMsg:
		m.rows = msg
		m.loaded = true
		m.lastErr = nil
		return m, m.scheduleNextPoll()

	case watchErrMsg:
		m.loaded = true
		m.lastErr = msg.err
		return m, m.scheduleNextPoll()

	case pollTickMsg:
		return m, m.fetch()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m watchModel) View() string {
	if !m.loaded {
		return fmt.Sprintf("\n  %s %s\n", m.spin.View(), formatter.Dim("Loading decision log..."))
	}

	body := formatter.FormatDecisions(m.userID, m.rows)
	if m.lastErr != nil {
		body += "\n" + formatter.StyleRed.Render(fmt.Sprintf("refresh failed: %v", m.lastErr)) + "\n"
	}
	body += "\n" + formatter.Dim(fmt.Sprintf("%s refreshing every %s · r to refresh · q to quit", m.spin.View(), m.interval))
	return body
}

func (m watchModel) fetch() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.decisions.ListByUser(context.Background(), m.userID, m.limit)
		if err != nil {
			return watchErrMsg{err: err}
		}
		return decisionsMsg(rows)
	}
}

func (m watchModel) scheduleNextPoll() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}
