// Package ledger builds submission batches of ledger entries and keeps
// the in-session history of what was accepted.
package ledger

import (
	"context"
	"fmt"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
)

// Poster is the outbound gateway port. A batch is posted atomically:
// it is either wholly accepted or not reflected anywhere.
type Poster interface {
	Post(ctx context.Context, batch []core.LogEntry) error
}

// StatusError reports a gateway response that carried a non-success
// status code. Its absence on a failed post means the failure happened
// before any response arrived (connectivity class).
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway responded with status %d", e.Code)
}
