package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// PersonalGroupID is the sentinel group id meaning "no group selected,
// personal calendar".
const PersonalGroupID int64 = -1

// Schedule is one calendar entry as the backend reports it. Group
// schedule responses use scheduleId instead of id; NormalizeID folds
// them together.
type Schedule struct {
	ID          int64  `json:"id,omitempty"`
	ScheduleID  int64  `json:"scheduleId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	StartTime   string `json:"startDateTime"`
	EndTime     string `json:"endDateTime"`
	Color       string `json:"color,omitempty"`
	IsPrivate   bool   `json:"isPrivate"`
}

// NormalizeID copies scheduleId into ID when the backend only set the
// group-schedule field.
func (s Schedule) NormalizeID() Schedule {
	if s.ID == 0 && s.ScheduleID != 0 {
		s.ID = s.ScheduleID
	}
	return s
}

var colorCodePattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks the fields a submission must carry before it is
// worth a network round trip.
func (s Schedule) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if s.StartTime == "" || s.EndTime == "" {
		return fmt.Errorf("%w: start and end times are required", ErrValidation)
	}
	start, err := time.Parse("2006-01-02T15:04:05", s.StartTime)
	if err != nil {
		return fmt.Errorf("%w: start time %q is not an ISO datetime", ErrValidation, s.StartTime)
	}
	end, err := time.Parse("2006-01-02T15:04:05", s.EndTime)
	if err != nil {
		return fmt.Errorf("%w: end time %q is not an ISO datetime", ErrValidation, s.EndTime)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end time precedes start time", ErrValidation)
	}
	if s.Color != "" && !colorCodePattern.MatchString(s.Color) {
		return fmt.Errorf("%w: color %q is not a hex code", ErrValidation, s.Color)
	}
	return nil
}

// GroupSelection is the currently selected calendar: a group id, or the
// personal sentinel.
type GroupSelection struct {
	GroupID int64
}

func (g GroupSelection) Personal() bool {
	return g.GroupID == PersonalGroupID
}

// ScheduleQuery asks for the schedule detail of one member on one day.
// GroupID selects the endpoint family; the personal sentinel routes to
// the personal-schedule endpoint.
type ScheduleQuery struct {
	MemberID string
	Date     string
	GroupID  int64
}

func (q ScheduleQuery) Personal() bool {
	return q.GroupID == PersonalGroupID
}

func (q ScheduleQuery) Validate() error {
	if strings.TrimSpace(q.MemberID) == "" {
		return fmt.Errorf("%w: member id is required", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", q.Date); err != nil {
		return fmt.Errorf("%w: date %q is not an ISO date", ErrValidation, q.Date)
	}
	return nil
}
