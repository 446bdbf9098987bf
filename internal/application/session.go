package application

import (
	"context"
	"fmt"
	"time"

	"github.com/kit-coca/coca-cli/internal/domain"
	"github.com/kit-coca/coca-cli/internal/ports"
)

const defaultExpirySkew = 30 * time.Second

// SessionCoordinator owns the refresh-then-retry protocol. Per logical
// user action it performs at most one refresh and one retry, and always
// hands the final outcome back to the caller. The earlier frontend
// recursed on every 401 with no cap and could drop the second call's
// result; the bounded protocol here closes both holes.
//
// Concurrent actions that each hit a 401 each run their own refresh.
// The backend's refresh endpoint is idempotent, so the duplicate call
// is tolerated rather than deduplicated.
type SessionCoordinator struct {
	fetcher   ports.Fetcher
	refresher ports.SessionRefresher
	tokens    ports.TokenStore
	notifier  ports.Notifier
	clock     ports.Clock
	skew      time.Duration
}

func NewSessionCoordinator(fetcher ports.Fetcher, refresher ports.SessionRefresher, tokens ports.TokenStore, notifier ports.Notifier, clock ports.Clock) *SessionCoordinator {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionCoordinator{
		fetcher:   fetcher,
		refresher: refresher,
		tokens:    tokens,
		notifier:  notifier,
		clock:     clock,
		skew:      defaultExpirySkew,
	}
}

// Do executes the request with transparent credential recovery:
//
//	Initial    — run the request as-is.
//	Refreshing — on Unauthorized, exchange the refresh token once; a
//	             rejected refresh clears the store, notifies the user
//	             and terminates with SessionExpired.
//	Retry      — rerun the request exactly once with the new token. A
//	             second Unauthorized is terminal SessionExpired, never
//	             another refresh.
//
// A session already known to expire within the skew window is refreshed
// up front, which still counts as the single refresh of this action.
func (c *SessionCoordinator) Do(ctx context.Context, spec domain.RequestSpec) domain.Outcome {
	session, err := c.tokens.Get(ctx)
	if err != nil {
		return domain.Failure(fmt.Errorf("load session: %w", err))
	}

	refreshed := false
	if session.Authenticated() && session.ExpiringSoon(c.clock.Now(), c.skew) {
		if outcome, ok := c.refreshSession(ctx, session); !ok {
			return outcome
		}
		refreshed = true
	}

	first := c.fetcher.Execute(ctx, spec)
	if !first.IsUnauthorized() {
		return first
	}
	if refreshed {
		return domain.Failure(fmt.Errorf("unauthorized after refresh: %w", domain.ErrSessionExpired))
	}

	session, err = c.tokens.Get(ctx)
	if err != nil {
		return domain.Failure(fmt.Errorf("load session: %w", err))
	}
	if outcome, ok := c.refreshSession(ctx, session); !ok {
		return outcome
	}

	retry := c.fetcher.Execute(ctx, spec)
	if retry.IsUnauthorized() {
		return domain.Failure(fmt.Errorf("unauthorized after refresh: %w", domain.ErrSessionExpired))
	}
	return retry
}

// refreshSession runs the Refreshing state: renew, persist, or force
// logout. The boolean reports whether the caller may proceed.
func (c *SessionCoordinator) refreshSession(ctx context.Context, session domain.Session) (domain.Outcome, bool) {
	renewed, err := c.refresher.Refresh(ctx, session)
	if err != nil {
		_ = c.tokens.Clear(ctx)
		if c.notifier != nil {
			c.notifier.LoginRequired()
		}
		return domain.Failure(fmt.Errorf("refresh session: %w", domain.ErrSessionExpired)), false
	}

	if err := c.tokens.Set(ctx, renewed); err != nil {
		return domain.Failure(fmt.Errorf("persist renewed session: %w", err)), false
	}

	return domain.Outcome{}, true
}
