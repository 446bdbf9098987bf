package calendar

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kit-coca/coca-cli/internal/application"
	"github.com/kit-coca/coca-cli/internal/domain"
)

// Fetch runs a day-detail query through the session coordinator.
type Fetch func(ctx context.Context, query domain.ScheduleQuery) domain.Outcome

// Submit sends an add or edit form through the session coordinator and
// reports failure as an error.
type Submit func(ctx context.Context, schedule domain.Schedule, editing bool) error

// Options wires the interactive calendar to the application core. The
// model consults the panel machine for every transition and never
// mutates core state on its own.
type Options struct {
	MemberID string
	Panel    *application.PanelMachine
	Groups   *application.GroupContext
	GroupTab []domain.Group
	Fetch    Fetch
	Submit   Submit
	Now      func() time.Time
}

type slotResolvedMsg struct {
	ticket  application.QueryTicket
	outcome domain.Outcome
}

type submitResultMsg struct {
	err error
}

type noticeExpiredMsg struct{}

// Model is the interactive month view plus the left panel driven by
// the panel state machine.
type Model struct {
	opts    Options
	styles  styles
	spinner spinner.Model
	input   textinput.Model

	cursor   time.Time
	fetching bool
	notice   string
	quitting bool
}

func NewModel(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	input := textinput.New()
	input.Placeholder = "schedule title"
	input.CharLimit = 120

	return Model{
		opts:    opts,
		styles:  newStyles(),
		spinner: s,
		input:   input,
		cursor:  opts.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case slotResolvedMsg:
		m.fetching = false
		m.opts.Panel.Resolve(msg.ticket, msg.outcome)
		return m, nil
	case submitResultMsg:
		if msg.err != nil {
			m.opts.Panel.SubmitFailed(msg.err)
		} else {
			m.opts.Panel.SubmitSucceeded()
		}
		return m, nil
	case noticeExpiredMsg:
		m.notice = ""
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.opts.Panel.State()

	if state.Kind == application.PanelAddSchedule || state.Kind == application.PanelEditSchedule {
		return m.handleFormKey(msg, state)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		m.cursor = m.cursor.AddDate(0, 0, -1)
	case "right", "l":
		m.cursor = m.cursor.AddDate(0, 0, 1)
	case "up", "k":
		m.cursor = m.cursor.AddDate(0, 0, -7)
	case "down", "j":
		m.cursor = m.cursor.AddDate(0, 0, 7)
	case "tab":
		m.cycleGroup()
	case "enter":
		return m.selectSlot()
	case "a":
		if err := m.opts.Panel.Add(); err == nil {
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
	case "e":
		if err := m.opts.Panel.Edit(0); err == nil {
			m.input.SetValue(m.opts.Panel.State().Editing.Title)
			m.input.Focus()
			return m, textinput.Blink
		}
	case "esc", "b":
		m.opts.Panel.Back()
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg, state application.PanelState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.opts.Panel.Cancel()
		m.input.Blur()
		return m, nil
	case "enter":
		return m.submitForm(state)
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) selectSlot() (tea.Model, tea.Cmd) {
	date := m.cursor.Format("2006-01-02")
	ticket, err := m.opts.Panel.SelectSlot(m.opts.MemberID, date)
	if err != nil {
		m.notice = err.Error()
		return m, expireNotice()
	}

	m.fetching = true
	fetch := func() tea.Msg {
		return slotResolvedMsg{ticket: ticket, outcome: m.opts.Fetch(context.Background(), ticket.Query)}
	}
	return m, tea.Batch(m.spinner.Tick, fetch)
}

func (m Model) submitForm(state application.PanelState) (tea.Model, tea.Cmd) {
	schedule := state.Editing
	schedule.Title = m.input.Value()
	if state.Kind == application.PanelAddSchedule {
		schedule = domain.Schedule{
			Title:     m.input.Value(),
			StartTime: state.Date + "T00:00:00",
			EndTime:   state.Date + "T23:59:59",
		}
	}
	if err := schedule.Validate(); err != nil {
		m.notice = err.Error()
		return m, expireNotice()
	}

	editing := state.Kind == application.PanelEditSchedule
	m.input.Blur()
	submit := func() tea.Msg {
		return submitResultMsg{err: m.opts.Submit(context.Background(), schedule, editing)}
	}
	return m, submit
}

func (m *Model) cycleGroup() {
	if len(m.opts.GroupTab) == 0 {
		return
	}

	current := m.opts.Groups.Current()
	if current.Personal() {
		m.opts.Groups.Select(m.opts.GroupTab[0].ID)
		return
	}
	for i, group := range m.opts.GroupTab {
		if group.ID == current.GroupID {
			if i+1 < len(m.opts.GroupTab) {
				m.opts.Groups.Select(m.opts.GroupTab[i+1].ID)
			} else {
				m.opts.Groups.SelectPersonal()
			}
			return
		}
	}
	m.opts.Groups.SelectPersonal()
}

func expireNotice() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

// Run starts the interactive calendar and blocks until the user quits.
func Run(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts), tea.WithAltScreen()).Run()
	return err
}
