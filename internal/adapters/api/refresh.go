package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kit-coca/coca-cli/internal/domain"
)

// TokenPair is the credential payload the backend returns from login
// and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId,omitempty"`
	ExpiresIn    int64  `json:"expiresIn,omitempty"`
}

// Session folds the pair into a full session. The backend may omit the
// member id on refresh; it is carried over from the previous session.
func (p TokenPair) Session(previous domain.Session, now time.Time) (domain.Session, error) {
	if strings.TrimSpace(p.AccessToken) == "" {
		return domain.Session{}, fmt.Errorf("token payload missing access token")
	}

	session := domain.Session{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		UserID:       p.UserID,
	}
	if session.RefreshToken == "" {
		session.RefreshToken = previous.RefreshToken
	}
	if session.UserID == "" {
		session.UserID = previous.UserID
	}
	if p.ExpiresIn > 0 {
		session.ExpiresAt = now.Add(time.Duration(p.ExpiresIn) * time.Second).Unix()
	}

	return session, session.Validate()
}

// Refresher mints a new access token from the stored refresh token. It
// talks to the refresh endpoint directly; the access token plays no
// part in this call.
type Refresher struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

type refreshBody struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh exchanges the refresh token for a new session. Any failure,
// transport included, means the caller must treat the session as gone.
func (r *Refresher) Refresh(ctx context.Context, session domain.Session) (domain.Session, error) {
	if session.RefreshToken == "" {
		return domain.Session{}, fmt.Errorf("refresh: %w", domain.ErrSessionExpired)
	}

	endpoint, err := buildAPIURL(r.BaseURL, "/api/auth/refresh")
	if err != nil {
		return domain.Session{}, err
	}

	encoded, err := json.Marshal(refreshBody{RefreshToken: session.RefreshToken})
	if err != nil {
		return domain.Session{}, fmt.Errorf("encode refresh request: %w", err)
	}

	requestCtx, cancel := r.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return domain.Session{}, fmt.Errorf("create refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient().Do(req)
	if err != nil {
		return domain.Session{}, fmt.Errorf("request refresh: %w", &domain.NetworkError{Err: err})
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxEnvelopeBytes)).Decode(&env); err != nil {
		return domain.Session{}, fmt.Errorf("decode refresh envelope: %w", err)
	}
	if env.Code != http.StatusOK {
		return domain.Session{}, fmt.Errorf("refresh rejected with code %d: %w", env.Code, domain.ErrSessionExpired)
	}

	var pair TokenPair
	if err := json.Unmarshal(env.Data, &pair); err != nil {
		return domain.Session{}, fmt.Errorf("decode refresh payload: %w", err)
	}

	return pair.Session(session, time.Now())
}

func (r *Refresher) httpClient() *http.Client {
	if r.HTTPClient != nil {
		return r.HTTPClient
	}
	return http.DefaultClient
}

func (r *Refresher) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := r.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}
