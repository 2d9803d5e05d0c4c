// Package store loads the record snapshot for a session and persists
// imported snapshots in SQLite.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rcliao/bio-browser/internal/model"
)

// Loader produces the records for one session. The returned slice is the
// base order and must be treated as read-only.
type Loader interface {
	// Load fetches and decodes the records. Failures are *LoadError.
	Load(ctx context.Context) ([]model.Record, error)
}

// Load operations reported in LoadError.Op.
const (
	OpFetch    = "fetch"
	OpRead     = "read"
	OpDecode   = "decode"
	OpValidate = "validate"
)

// ErrNoSnapshot is returned when the database holds no imported snapshot.
var ErrNoSnapshot = errors.New("no snapshot imported")

// LoadError reports a failure to obtain the record snapshot.
type LoadError struct {
	Source string
	Op     string
	Cause  error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Source, e.Op, e.Cause)
	}
	return fmt.Sprintf("load %s: %s failed", e.Source, e.Op)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Snapshot describes one imported record set.
type Snapshot struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	RecordCount int       `json:"record_count"`
	CreatedAt   time.Time `json:"created_at"`
}
