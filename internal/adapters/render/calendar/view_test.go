package calendar

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kit-coca/coca-cli/internal/application"
	"github.com/kit-coca/coca-cli/internal/domain"
)

type silentNotifier struct{}

func (silentNotifier) TransientError(error)                 {}
func (silentNotifier) LoginRequired()                       {}
func (silentNotifier) ConfirmDeletion(string) (bool, error) { return false, nil }

func testModel(t *testing.T, fetch Fetch) Model {
	t.Helper()

	groups := application.NewGroupContext()
	opts := Options{
		MemberID: "member-1",
		Panel:    application.NewPanelMachine(groups, silentNotifier{}, application.AddFailureBack),
		Groups:   groups,
		GroupTab: []domain.Group{{ID: 11, Name: "스터디"}},
		Fetch:    fetch,
		Submit:   func(context.Context, domain.Schedule, bool) error { return nil },
		Now: func() time.Time {
			return time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)
		},
	}
	return NewModel(opts)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectSlotResolvesIntoDetailPanel(t *testing.T) {
	t.Parallel()

	fetch := func(_ context.Context, query domain.ScheduleQuery) domain.Outcome {
		assert.Equal(t, "member-1", query.MemberID)
		assert.Equal(t, "2024-05-22", query.Date)
		assert.True(t, query.Personal())
		return domain.Success(json.RawMessage(`[{"title":"비공개 일정","startDateTime":"2024-05-22T00:00:00","endDateTime":"2024-05-23T23:59:59","isPrivate":true}]`))
	}

	model := testModel(t, fetch)

	updated, cmd := model.Update(keyMsg("enter"))
	model = updated.(Model)
	require.NotNil(t, cmd)
	assert.True(t, model.fetching)

	// run the batched command and feed the resolution message back in
	msg := findMsg(t, cmd, func(msg tea.Msg) bool {
		_, ok := msg.(slotResolvedMsg)
		return ok
	})

	updated, _ = model.Update(msg)
	model = updated.(Model)
	assert.False(t, model.fetching)

	state := model.opts.Panel.State()
	require.Equal(t, application.PanelScheduleDetail, state.Kind)
	assert.Equal(t, "2024-05-22", state.Date)

	view := model.View()
	assert.Contains(t, view, "2024-05-22")
	assert.Contains(t, view, "비공개 일정")
}

func TestGroupCyclingWrapsAround(t *testing.T) {
	t.Parallel()

	model := testModel(t, nil)
	require.True(t, model.opts.Groups.Current().Personal())

	updated, _ := model.Update(keyMsg("tab"))
	model = updated.(Model)
	assert.Equal(t, int64(11), model.opts.Groups.Current().GroupID)

	updated, _ = model.Update(keyMsg("tab"))
	model = updated.(Model)
	assert.True(t, model.opts.Groups.Current().Personal())
}

func TestFormCancelReturnsToDetail(t *testing.T) {
	t.Parallel()

	fetch := func(context.Context, domain.ScheduleQuery) domain.Outcome {
		return domain.Success(json.RawMessage(`[{"title":"회의","startDateTime":"2024-05-22T10:00:00","endDateTime":"2024-05-22T11:00:00"}]`))
	}
	model := testModel(t, fetch)

	updated, cmd := model.Update(keyMsg("enter"))
	model = updated.(Model)
	msg := findMsg(t, cmd, func(msg tea.Msg) bool {
		_, ok := msg.(slotResolvedMsg)
		return ok
	})
	updated, _ = model.Update(msg)
	model = updated.(Model)

	updated, _ = model.Update(keyMsg("a"))
	model = updated.(Model)
	assert.Equal(t, application.PanelAddSchedule, model.opts.Panel.State().Kind)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(Model)
	assert.Equal(t, application.PanelScheduleDetail, model.opts.Panel.State().Kind)
}

func TestSubmitResultDrivesPanel(t *testing.T) {
	t.Parallel()

	fetch := func(context.Context, domain.ScheduleQuery) domain.Outcome {
		return domain.Success(json.RawMessage(`[]`))
	}
	model := testModel(t, fetch)

	updated, cmd := model.Update(keyMsg("enter"))
	model = updated.(Model)
	msg := findMsg(t, cmd, func(msg tea.Msg) bool {
		_, ok := msg.(slotResolvedMsg)
		return ok
	})
	updated, _ = model.Update(msg)
	model = updated.(Model)

	updated, _ = model.Update(keyMsg("a"))
	model = updated.(Model)

	updated, _ = model.Update(submitResultMsg{})
	model = updated.(Model)
	assert.Equal(t, application.PanelDefault, model.opts.Panel.State().Kind)
}

func TestMonthViewShowsCursorMonth(t *testing.T) {
	t.Parallel()

	model := testModel(t, nil)
	view := model.View()
	assert.Contains(t, view, "May 2024")
	assert.Contains(t, view, "Su Mo Tu We Th Fr Sa")
	assert.Contains(t, view, "personal")
	assert.Contains(t, view, "스터디")
}

// findMsg runs cmd (flattening batches) until pred matches.
func findMsg(t *testing.T, cmd tea.Cmd, pred func(tea.Msg) bool) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if pred(msg) {
			return msg
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
		}
	}

	t.Fatal("expected message not produced")
	return nil
}
