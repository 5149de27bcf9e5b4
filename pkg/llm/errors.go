package llm

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

var (
	ErrTimeout         = errors.New("completion request timed out")
	ErrConnection      = errors.New("cannot reach completion endpoint")
	ErrEmptyCompletion = errors.New("completion returned no text")
)

// UpstreamError carries a non-2xx answer from the completion provider.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion upstream error (status %d): %s", e.Status, e.Body)
}

const maxUpstreamBody = 300

func truncateBody(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxUpstreamBody {
		return s[:maxUpstreamBody] + "..."
	}
	return s
}

// transportError folds network-level failures into the package taxonomy.
func transportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ErrConnection
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return ErrConnection
	}
	return fmt.Errorf("completion request failed: %w", err)
}
