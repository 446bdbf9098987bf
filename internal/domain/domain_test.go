package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionValidateRequiresUserIDWithAccessToken(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Session{}.Validate())
	assert.NoError(t, Session{AccessToken: "at", UserID: "member-1"}.Validate())
	assert.ErrorIs(t, Session{AccessToken: "at"}.Validate(), ErrSessionIncomplete)
}

func TestSessionExpiringSoon(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)

	noExpiry := Session{AccessToken: "at", UserID: "m"}
	assert.False(t, noExpiry.ExpiringSoon(now, time.Minute))

	fresh := Session{AccessToken: "at", UserID: "m", ExpiresAt: now.Add(time.Hour).Unix()}
	assert.False(t, fresh.ExpiringSoon(now, time.Minute))

	stale := Session{AccessToken: "at", UserID: "m", ExpiresAt: now.Add(30 * time.Second).Unix()}
	assert.True(t, stale.ExpiringSoon(now, time.Minute))
}

func TestOutcomeVariantsAreExclusive(t *testing.T) {
	t.Parallel()

	success := Success(json.RawMessage(`[{"title":"x"}]`))
	assert.True(t, success.IsSuccess())
	assert.False(t, success.IsUnauthorized())
	assert.False(t, success.IsFailure())

	unauthorized := Unauthorized()
	assert.True(t, unauthorized.IsUnauthorized())

	failure := Failure(&NetworkError{Err: errors.New("refused")})
	assert.True(t, failure.IsFailure())

	var netErr *NetworkError
	require.ErrorAs(t, failure.Cause, &netErr)
}

func TestOutcomeDecode(t *testing.T) {
	t.Parallel()

	outcome := Success(json.RawMessage(`[{"title":"비공개 일정","startDateTime":"2024-05-22T00:00:00","endDateTime":"2024-05-23T23:59:59","isPrivate":true}]`))

	var schedules []Schedule
	require.NoError(t, outcome.Decode(&schedules))
	require.Len(t, schedules, 1)
	assert.Equal(t, "비공개 일정", schedules[0].Title)
	assert.True(t, schedules[0].IsPrivate)

	assert.ErrorIs(t, Unauthorized().Decode(&schedules), ErrValidation)
}

func TestScheduleNormalizeID(t *testing.T) {
	t.Parallel()

	grouped := Schedule{ScheduleID: 42}.NormalizeID()
	assert.Equal(t, int64(42), grouped.ID)

	personal := Schedule{ID: 7, ScheduleID: 99}.NormalizeID()
	assert.Equal(t, int64(7), personal.ID)
}

func TestScheduleValidate(t *testing.T) {
	t.Parallel()

	valid := Schedule{
		Title:     "스터디",
		StartTime: "2024-05-22T10:00:00",
		EndTime:   "2024-05-22T12:00:00",
		Color:     "#aabbcc",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Schedule)
	}{
		{name: "missing title", mutate: func(s *Schedule) { s.Title = "  " }},
		{name: "missing start", mutate: func(s *Schedule) { s.StartTime = "" }},
		{name: "bad start format", mutate: func(s *Schedule) { s.StartTime = "2024-05-22" }},
		{name: "end before start", mutate: func(s *Schedule) { s.EndTime = "2024-05-22T09:00:00" }},
		{name: "bad color", mutate: func(s *Schedule) { s.Color = "blue" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			schedule := valid
			tt.mutate(&schedule)
			assert.ErrorIs(t, schedule.Validate(), ErrValidation)
		})
	}
}

func TestScheduleQueryValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, ScheduleQuery{MemberID: "m", Date: "2024-05-22", GroupID: PersonalGroupID}.Validate())
	assert.ErrorIs(t, ScheduleQuery{Date: "2024-05-22"}.Validate(), ErrValidation)
	assert.ErrorIs(t, ScheduleQuery{MemberID: "m", Date: "22/05/2024"}.Validate(), ErrValidation)
}

func TestGroupSelectionPersonalSentinel(t *testing.T) {
	t.Parallel()

	assert.True(t, GroupSelection{GroupID: PersonalGroupID}.Personal())
	assert.False(t, GroupSelection{GroupID: 11}.Personal())
}
