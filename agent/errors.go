package agent

import (
	"errors"
	"fmt"

	"github.com/petasbytes/cozyreq/internal/claude"
)

// Wire-level failures originate in the codec; aliased here so callers work
// against a single taxonomy. All run errors are terminal: the agent never
// retries. A retry policy, if wanted, belongs to a supervisor wrapping Run.
type (
	// TransportError is an underlying network failure.
	TransportError = claude.TransportError
	// APIError is a non-success HTTP response, with status and raw body.
	APIError = claude.APIError
	// ParseError is a response body that does not decode into the
	// expected shape.
	ParseError = claude.ParseError
)

// ErrCancelled reports that the caller's context was cancelled. The
// conversation built so far is still returned.
var ErrCancelled = errors.New("agent execution cancelled")

// ErrTurnLimit reports that a configured WithMaxTurns guard tripped before
// the model finished.
var ErrTurnLimit = errors.New("turn limit reached")

// ConfigError is a construction-time failure, e.g. a missing credential.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s", e.Reason)
}

// ToolNotFoundError is a request for a tool the catalog does not know.
// Results already appended for the same batch remain in the returned
// history.
type ToolNotFoundError struct {
	Name string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool not found: %s", e.Name)
}
