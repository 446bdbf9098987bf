package ports

import (
	"context"

	"github.com/kit-coca/coca-cli/internal/domain"
)

// TokenStore is the single owner of the persisted session. Everything
// else borrows the session per call and never caches it across a
// network round trip.
type TokenStore interface {
	Get(ctx context.Context) (domain.Session, error)
	Set(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
