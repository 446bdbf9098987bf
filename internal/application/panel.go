package application

import (
	"fmt"

	"github.com/kit-coca/coca-cli/internal/domain"
	"github.com/kit-coca/coca-cli/internal/ports"
)

type PanelKind int

const (
	PanelDefault PanelKind = iota
	PanelScheduleDetail
	PanelAddSchedule
	PanelEditSchedule
)

func (k PanelKind) String() string {
	switch k {
	case PanelDefault:
		return "default"
	case PanelScheduleDetail:
		return "detail"
	case PanelAddSchedule:
		return "add"
	case PanelEditSchedule:
		return "edit"
	default:
		return fmt.Sprintf("panel(%d)", int(k))
	}
}

// AddFailurePolicy decides where a failed add-schedule submission
// leaves the user: back on the form to retry, or back on the detail
// view. The observed frontend never settled this, so it is a config
// choice.
type AddFailurePolicy string

const (
	AddFailureStay AddFailurePolicy = "stay"
	AddFailureBack AddFailurePolicy = "back"
)

func (p AddFailurePolicy) Valid() bool {
	switch p {
	case AddFailureStay, AddFailureBack:
		return true
	default:
		return false
	}
}

// PanelState is the one active view and the data it needs. Exactly one
// kind is active at a time; Schedules is only meaningful for the detail
// panel and Editing only for the edit panel.
type PanelState struct {
	Kind      PanelKind
	Date      string
	Schedules []domain.Schedule
	Editing   domain.Schedule
}

// QueryTicket tags an in-flight day query with the sequence number it
// was issued under. Resolve discards tickets that are no longer the
// latest, so a slow response cannot clobber a newer panel.
type QueryTicket struct {
	Seq   uint64
	Query domain.ScheduleQuery
}

var (
	errNotOnDetailPanel = fmt.Errorf("action requires the schedule detail panel: %w", domain.ErrValidation)
	errNoSuchItem       = fmt.Errorf("no schedule item at that position: %w", domain.ErrValidation)
)

// PanelMachine drives the left-panel view states:
//
//	Default -> ScheduleDetail  on a resolved slot query
//	ScheduleDetail -> AddSchedule / EditSchedule / Default
//	AddSchedule -> Default on submit, detail or Default on cancel
//	EditSchedule -> ScheduleDetail on submit or cancel
//
// It never issues retries and never mutates credentials; failures reach
// the notifier and leave the current state exactly as it was.
type PanelMachine struct {
	groups     *GroupContext
	notifier   ports.Notifier
	addFailure AddFailurePolicy

	state    PanelState
	lastList []domain.Schedule
	lastDate string
	seq      uint64
}

func NewPanelMachine(groups *GroupContext, notifier ports.Notifier, addFailure AddFailurePolicy) *PanelMachine {
	if !addFailure.Valid() {
		addFailure = AddFailureBack
	}

	return &PanelMachine{
		groups:     groups,
		notifier:   notifier,
		addFailure: addFailure,
		state:      PanelState{Kind: PanelDefault},
	}
}

func (m *PanelMachine) State() PanelState {
	return m.state
}

// SelectSlot starts a day query for the current group selection. The
// panel stays where it is until the ticket resolves; issuing a new slot
// query supersedes every earlier ticket.
func (m *PanelMachine) SelectSlot(memberID, date string) (QueryTicket, error) {
	query := domain.ScheduleQuery{
		MemberID: memberID,
		Date:     date,
		GroupID:  m.groups.Current().GroupID,
	}
	if err := query.Validate(); err != nil {
		return QueryTicket{}, err
	}

	m.seq++
	return QueryTicket{Seq: m.seq, Query: query}, nil
}

// Resolve applies the outcome of a slot query. Stale tickets are
// dropped without touching state. A terminal failure surfaces through
// the notifier and leaves the panel unchanged.
func (m *PanelMachine) Resolve(ticket QueryTicket, outcome domain.Outcome) {
	if ticket.Seq != m.seq {
		return
	}

	switch {
	case outcome.IsSuccess():
		var schedules []domain.Schedule
		if err := outcome.Decode(&schedules); err != nil {
			m.notifyError(fmt.Errorf("decode schedule list: %w", err))
			return
		}
		for i := range schedules {
			schedules[i] = schedules[i].NormalizeID()
		}
		m.lastList = schedules
		m.lastDate = ticket.Query.Date
		m.state = PanelState{Kind: PanelScheduleDetail, Date: ticket.Query.Date, Schedules: schedules}
	case outcome.IsUnauthorized():
		m.notifyError(domain.ErrSessionExpired)
	default:
		m.notifyError(outcome.Cause)
	}
}

// Add moves from the detail view to the add form for the same date.
func (m *PanelMachine) Add() error {
	if m.state.Kind != PanelScheduleDetail {
		return errNotOnDetailPanel
	}
	m.state = PanelState{Kind: PanelAddSchedule, Date: m.state.Date}
	return nil
}

// Edit moves to the edit form for item index of the detail list.
func (m *PanelMachine) Edit(index int) error {
	if m.state.Kind != PanelScheduleDetail {
		return errNotOnDetailPanel
	}
	if index < 0 || index >= len(m.state.Schedules) {
		return errNoSuchItem
	}
	m.state = PanelState{
		Kind:    PanelEditSchedule,
		Date:    m.state.Date,
		Editing: m.state.Schedules[index],
	}
	return nil
}

// Back returns from the detail view to the default panel.
func (m *PanelMachine) Back() {
	if m.state.Kind == PanelScheduleDetail {
		m.state = PanelState{Kind: PanelDefault}
	}
}

// SubmitSucceeded applies a successful form submission. An added
// schedule sends the user back to the default panel; the calendar
// collaborator re-fetches the month. An edit returns to the detail
// view with the last known list.
func (m *PanelMachine) SubmitSucceeded() {
	switch m.state.Kind {
	case PanelAddSchedule:
		m.state = PanelState{Kind: PanelDefault}
	case PanelEditSchedule:
		m.state = PanelState{Kind: PanelScheduleDetail, Date: m.state.Date, Schedules: m.lastList}
	}
}

// SubmitFailed reports err and applies the configured add-failure
// policy; a failed edit always returns to the detail view.
func (m *PanelMachine) SubmitFailed(err error) {
	m.notifyError(err)

	switch m.state.Kind {
	case PanelAddSchedule:
		if m.addFailure == AddFailureStay {
			return
		}
		m.leaveForm()
	case PanelEditSchedule:
		m.state = PanelState{Kind: PanelScheduleDetail, Date: m.state.Date, Schedules: m.lastList}
	}
}

// Cancel abandons the active form.
func (m *PanelMachine) Cancel() {
	switch m.state.Kind {
	case PanelAddSchedule:
		m.leaveForm()
	case PanelEditSchedule:
		m.state = PanelState{Kind: PanelScheduleDetail, Date: m.state.Date, Schedules: m.lastList}
	}
}

func (m *PanelMachine) leaveForm() {
	if m.lastDate != "" {
		m.state = PanelState{Kind: PanelScheduleDetail, Date: m.lastDate, Schedules: m.lastList}
		return
	}
	m.state = PanelState{Kind: PanelDefault}
}

func (m *PanelMachine) notifyError(err error) {
	if m.notifier != nil {
		m.notifier.TransientError(err)
	}
}
