package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"vmstrip/internal/logging"
)

// Journal adapts a Store to the controller's journal hook. Each Journal
// carries the session identifier of one daemon run.
type Journal struct {
	store     *Store
	sessionID string
	logger    *slog.Logger
}

// NewJournal wraps the store with a fresh session identifier.
func NewJournal(store *Store, logger *slog.Logger) *Journal {
	return &Journal{
		store:     store,
		sessionID: uuid.NewString(),
		logger:    logging.NewComponentLogger(logger, "history"),
	}
}

// SessionID returns this run's journal session identifier.
func (j *Journal) SessionID() string {
	return j.sessionID
}

// Record stores one action, absorbing any persistence failure.
func (j *Journal) Record(action, detail string) {
	if j == nil || j.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := j.store.Record(ctx, j.sessionID, action, detail); err != nil {
		j.logger.Warn("failed to record action",
			logging.String(logging.FieldAction, action),
			logging.Error(err))
	}
}
