package application

import "github.com/kit-coca/coca-cli/internal/domain"

// GroupContext tracks which calendar the user is looking at: one group,
// or the personal sentinel. Query construction reads the selection
// through Current and never infers it from anywhere else.
//
// The selection has a single owner (the view loop); mutation happens
// only on an explicit group-switch action, so no locking is needed.
type GroupContext struct {
	selection domain.GroupSelection
}

// NewGroupContext starts on the personal calendar.
func NewGroupContext() *GroupContext {
	return &GroupContext{selection: domain.GroupSelection{GroupID: domain.PersonalGroupID}}
}

func (g *GroupContext) Current() domain.GroupSelection {
	return g.selection
}

func (g *GroupContext) Select(groupID int64) {
	g.selection = domain.GroupSelection{GroupID: groupID}
}

// SelectPersonal switches back to the personal calendar.
func (g *GroupContext) SelectPersonal() {
	g.selection = domain.GroupSelection{GroupID: domain.PersonalGroupID}
}
