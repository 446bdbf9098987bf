package ports

import (
	"context"

	"github.com/kit-coca/coca-cli/internal/domain"
)

// Fetcher issues a single credentialed backend call and classifies the
// response. It never retries and never touches the token store.
type Fetcher interface {
	Execute(ctx context.Context, spec domain.RequestSpec) domain.Outcome
}

// SessionRefresher mints a new session from the stored refresh token.
type SessionRefresher interface {
	Refresh(ctx context.Context, session domain.Session) (domain.Session, error)
}
