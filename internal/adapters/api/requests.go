package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/kit-coca/coca-cli/internal/domain"
)

// DetailRequest picks the endpoint family for a day-detail query:
// the personal sentinel routes to the personal-schedule endpoint, any
// other group id to the group-schedule one.
func DetailRequest(query domain.ScheduleQuery) domain.RequestSpec {
	if query.Personal() {
		return personalDetailRequest(query)
	}
	return groupDetailRequest(query)
}

func personalDetailRequest(query domain.ScheduleQuery) domain.RequestSpec {
	values := url.Values{}
	values.Set("memberId", query.MemberID)
	values.Set("date", query.Date)

	return domain.RequestSpec{
		Method: http.MethodGet,
		Path:   "/api/personal-schedule/detail/date",
		Query:  values,
	}
}

func groupDetailRequest(query domain.ScheduleQuery) domain.RequestSpec {
	values := url.Values{}
	values.Set("groupId", strconv.FormatInt(query.GroupID, 10))
	values.Set("memberId", query.MemberID)
	values.Set("inquiryDate", query.Date)

	return domain.RequestSpec{
		Method: http.MethodGet,
		Path:   "/api/group-schedule/groupScheduleSpecificReq",
		Query:  values,
	}
}

func GroupListRequest(memberID string) domain.RequestSpec {
	return domain.RequestSpec{
		Method: http.MethodGet,
		Path:   "/api/calendar/member/" + url.PathEscape(memberID),
	}
}

type scheduleBody struct {
	PersonalSchedule schedulePayload `json:"personalSchedule"`
	Member           memberRef       `json:"member"`
	Attachments      []string        `json:"attachments"`
}

type schedulePayload struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Color       string `json:"color,omitempty"`
	IsPrivate   bool   `json:"isPrivate"`
}

type memberRef struct {
	ID string `json:"id"`
}

func toSchedulePayload(schedule domain.Schedule) schedulePayload {
	schedule = schedule.NormalizeID()
	return schedulePayload{
		ID:          schedule.ID,
		Title:       schedule.Title,
		Description: schedule.Description,
		Location:    schedule.Location,
		StartTime:   schedule.StartTime,
		EndTime:     schedule.EndTime,
		Color:       schedule.Color,
		IsPrivate:   schedule.IsPrivate,
	}
}

func AddScheduleRequest(memberID string, schedule domain.Schedule) domain.RequestSpec {
	return domain.RequestSpec{
		Method: http.MethodPost,
		Path:   "/api/personal-schedule/add",
		Body: scheduleBody{
			PersonalSchedule: toSchedulePayload(schedule),
			Member:           memberRef{ID: memberID},
		},
	}
}

func ModifyScheduleRequest(memberID string, schedule domain.Schedule) domain.RequestSpec {
	return domain.RequestSpec{
		Method: http.MethodPut,
		Path:   "/api/personal-schedule/modify",
		Body: scheduleBody{
			PersonalSchedule: toSchedulePayload(schedule),
			Member:           memberRef{ID: memberID},
		},
	}
}

func DeleteScheduleRequest(scheduleID int64) domain.RequestSpec {
	values := url.Values{}
	values.Set("scheduleId", strconv.FormatInt(scheduleID, 10))

	return domain.RequestSpec{
		Method: http.MethodDelete,
		Path:   "/api/personal-schedule/delete",
		Query:  values,
	}
}

type groupAdminBody struct {
	Member memberRef `json:"member"`
	Group  groupRef  `json:"group"`
}

type groupRef struct {
	ID int64 `json:"id"`
}

func GroupAdminRequest(memberID string, groupID int64) domain.RequestSpec {
	return domain.RequestSpec{
		Method: http.MethodPost,
		Path:   "/api/group/admin",
		Body: groupAdminBody{
			Member: memberRef{ID: memberID},
			Group:  groupRef{ID: groupID},
		},
	}
}

func DeleteGroupRequest(adminID string, groupID int64) domain.RequestSpec {
	values := url.Values{}
	values.Set("adminId", adminID)
	values.Set("groupId", strconv.FormatInt(groupID, 10))

	return domain.RequestSpec{
		Method: http.MethodDelete,
		Path:   "/api/group/delete",
		Query:  values,
	}
}

// TagListRequest is the one anonymous read the backend exposes.
func TagListRequest() domain.RequestSpec {
	return domain.RequestSpec{
		Method:         http.MethodGet,
		Path:           "/api/tag/all",
		AllowAnonymous: true,
	}
}

func FriendListRequest(memberID string) domain.RequestSpec {
	values := url.Values{}
	values.Set("memberId", memberID)

	return domain.RequestSpec{
		Method: http.MethodGet,
		Path:   "/api/friend/list",
		Query:  values,
	}
}

type loginBody struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

func LoginRequest(memberID, password string) domain.RequestSpec {
	return domain.RequestSpec{
		Method:         http.MethodPost,
		Path:           "/api/auth/login",
		Body:           loginBody{ID: memberID, Password: password},
		AllowAnonymous: true,
	}
}
