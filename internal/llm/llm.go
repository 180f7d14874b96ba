package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client abstracts chat-completion providers.
type Client interface {
	// Complete sends a single user prompt and returns the raw text of the
	// model's reply.
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyContent is returned when a provider responds 2xx but the reply
// carries no message content.
var ErrEmptyContent = errors.New("provider response missing message content")

// StatusError reports a non-success HTTP status from the provider.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Message)
}

// AsStatusError unwraps err into a StatusError if it is one.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
