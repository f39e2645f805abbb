package contract

import (
	"context"

	"second-brain-be/pkg/store"
)

// SessionRepository backs the auth middleware. Implementations: redis for
// deployments, go-cache in memory for development and tests.
type SessionRepository interface {
	Save(ctx context.Context, session *store.Session) error
	Get(ctx context.Context, sessionID string) (*store.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
