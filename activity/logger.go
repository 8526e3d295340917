// Package activity implements the deferred audit log. Mutations queue an
// entry after their response is committed; a background worker persists it.
// A worker failure is logged and swallowed, it never reaches the caller.
package activity

import (
	"encoding/json"
	"log"

	"edugate/models"
	"edugate/repository"

	"gorm.io/datatypes"
)

// Entry is one audit event waiting to be persisted.
type Entry struct {
	UserID   uint
	Type     string // SIGN_IN, CREATE_COURSE, DELETE_COURSE, IMPORT_DATA
	Details  string
	Metadata map[string]interface{}
}

type Logger struct {
	repo    *repository.ActivityRepository
	entries chan Entry
	done    chan struct{}
}

// NewLogger starts the background worker. buffer bounds the number of
// pending entries; submits beyond it are dropped, not blocked on.
func NewLogger(repo *repository.ActivityRepository, buffer int) *Logger {
	l := &Logger{
		repo:    repo,
		entries: make(chan Entry, buffer),
		done:    make(chan struct{}),
	}
	go l.run()
	return l
}

// Log queues an entry without blocking the request path.
func (l *Logger) Log(entry Entry) {
	select {
	case l.entries <- entry:
	default:
		log.Printf("activity: queue full, dropping %s entry for user %d", entry.Type, entry.UserID)
	}
}

func (l *Logger) run() {
	defer close(l.done)

	for entry := range l.entries {
		record := models.UserActivity{
			UserID:  entry.UserID,
			Type:    entry.Type,
			Details: entry.Details,
		}
		if entry.Metadata != nil {
			if raw, err := json.Marshal(entry.Metadata); err == nil {
				record.Metadata = datatypes.JSON(raw)
			}
		}

		if err := l.repo.Append(&record); err != nil {
			log.Printf("activity: failed to append %s entry for user %d: %v", entry.Type, entry.UserID, err)
		}
	}
}

// Close stops accepting entries and waits for the queue to drain.
func (l *Logger) Close() {
	close(l.entries)
	<-l.done
}
