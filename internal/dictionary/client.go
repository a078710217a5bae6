package dictionary

import "context"

// Client defines the interface for dictionary API providers.
//
// Lookup never returns a Go error: every outcome, including transport
// failures, is expressed as one of Found, NotFound or ProviderError.
type Client interface {
	Lookup(ctx context.Context, word string) Result
	Name() string
}
