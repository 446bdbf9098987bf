package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kit-coca/coca-cli/internal/domain"
)

type memoryTokenStore struct {
	mu      sync.RWMutex
	session domain.Session
}

func (s *memoryTokenStore) Get(_ context.Context) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, nil
}

func (s *memoryTokenStore) Set(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return nil
}

func (s *memoryTokenStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{}
	return nil
}

func authedStore() *memoryTokenStore {
	return &memoryTokenStore{session: domain.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		UserID:       "member-1",
	}}
}

func TestExecuteReturnsEnvelopeDataOnSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/personal-schedule/detail/date", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		assert.Equal(t, "member-1", r.URL.Query().Get("memberId"))
		assert.Equal(t, "2024-05-22", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":200,"message":"OK","data":[{"title":"비공개 일정","startDateTime":"2024-05-22T00:00:00","endDateTime":"2024-05-23T23:59:59","isPrivate":true}]}`))
	}))
	t.Cleanup(server.Close)

	client := &Client{BaseURL: server.URL, Tokens: authedStore(), HTTPClient: server.Client()}

	outcome := client.Execute(context.Background(), DetailRequest(domain.ScheduleQuery{
		MemberID: "member-1",
		Date:     "2024-05-22",
		GroupID:  domain.PersonalGroupID,
	}))

	require.True(t, outcome.IsSuccess())

	var schedules []domain.Schedule
	require.NoError(t, outcome.Decode(&schedules))
	require.Len(t, schedules, 1)
	assert.Equal(t, "비공개 일정", schedules[0].Title)
}

func TestExecuteClassifiesEnvelope401AsUnauthorized(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":401,"message":"expired","data":null}`))
	}))
	t.Cleanup(server.Close)

	client := &Client{BaseURL: server.URL, Tokens: authedStore(), HTTPClient: server.Client()}

	outcome := client.Execute(context.Background(), GroupListRequest("member-1"))
	assert.True(t, outcome.IsUnauthorized())
}

func TestExecuteClassifiesHTTP401AsUnauthorized(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client := &Client{BaseURL: server.URL, Tokens: authedStore(), HTTPClient: server.Client()}

	outcome := client.Execute(context.Background(), GroupListRequest("member-1"))
	assert.True(t, outcome.IsUnauthorized())
}

func TestExecuteWithoutCredentialSkipsNetwork(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"code":200,"message":"OK","data":null}`))
	}))
	t.Cleanup(server.Close)

	client := &Client{BaseURL: server.URL, Tokens: &memoryTokenStore{}, HTTPClient: server.Client()}

	outcome := client.Execute(context.Background(), GroupListRequest("member-1"))
	assert.True(t, outcome.IsUnauthorized())
	assert.Equal(t, int32(0), hits.Load())
}

func TestExecuteAnonymousRequestGoesOutWithoutCredential(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":200,"message":"OK","data":[{"id":1,"field":"IT","name":"스프링"}]}`))
	}))
	t.Cleanup(server.Close)

	client := &Client{BaseURL: server.URL, Tokens: &memoryTokenStore{}, HTTPClient: server.Client()}

	outcome := client.Execute(context.Background(), TagListRequest())
	require.True(t, outcome.IsSuccess())

	var tags []domain.Tag
	require.NoError(t, outcome.Decode(&tags))
	require.Len(t, tags, 1)
	assert.Equal(t, "스프링", tags[0].Name)
}

func TestExecuteClassifiesApplicationError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":500,"message":"boom","data":null}`))
	}))
	t.Cleanup(server.Close)

	client := &Client{BaseURL: server.URL, Tokens: authedStore(), HTTPClient: server.Client()}

	outcome := client.Execute(context.Background(), GroupListRequest("member-1"))
	require.True(t, outcome.IsFailure())

	var appErr *domain.ApplicationError
	require.ErrorAs(t, outcome.Cause, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.Equal(t, "boom", appErr.Message)
}

func TestExecuteFoldsTransportFailureIntoNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := &Client{BaseURL: serverURL, Tokens: authedStore()}

	outcome := client.Execute(context.Background(), GroupListRequest("member-1"))
	require.True(t, outcome.IsFailure())

	var netErr *domain.NetworkError
	assert.ErrorAs(t, outcome.Cause, &netErr)
}

func TestExecuteNeverMutatesTokenStore(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":401,"message":"expired","data":null}`))
	}))
	t.Cleanup(server.Close)

	store := authedStore()
	client := &Client{BaseURL: server.URL, Tokens: store, HTTPClient: server.Client()}

	_ = client.Execute(context.Background(), GroupListRequest("member-1"))

	session, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-1", session.AccessToken)
}

func TestDetailRequestRoutesByGroupSelection(t *testing.T) {
	t.Parallel()

	personal := DetailRequest(domain.ScheduleQuery{MemberID: "m", Date: "2024-05-22", GroupID: domain.PersonalGroupID})
	assert.Equal(t, "/api/personal-schedule/detail/date", personal.Path)

	grouped := DetailRequest(domain.ScheduleQuery{MemberID: "m", Date: "2024-05-22", GroupID: 11})
	assert.Equal(t, "/api/group-schedule/groupScheduleSpecificReq", grouped.Path)
	assert.Equal(t, "11", grouped.Query.Get("groupId"))
	assert.Equal(t, "2024-05-22", grouped.Query.Get("inquiryDate"))
}
