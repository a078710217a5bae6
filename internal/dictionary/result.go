package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result is the classified response of a provider lookup.
// It is one of Found, NotFound or ProviderError.
type Result interface {
	isResult()
}

// Found carries the provider payload exactly as received.
type Found struct {
	Definition string
}

// NotFound means the provider does not know the word. Suggestions holds
// spelling alternatives and may be empty.
type NotFound struct {
	Suggestions []string
}

// ProviderError covers transport failures, timeouts and non-2xx responses.
// Detail is safe to show to API clients; Err keeps the cause for logs.
type ProviderError struct {
	Detail string
	Err    error
}

func (Found) isResult()         {}
func (NotFound) isResult()      {}
func (ProviderError) isResult() {}

func (e ProviderError) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e ProviderError) Unwrap() error {
	return e.Err
}

// Classify maps a provider HTTP response onto a Result. It is the only place
// that inspects the shape of a provider body:
//
//   - any non-2xx status is a ProviderError, whatever the body
//   - a JSON array of strings (including []) is NotFound, the strings being suggestions
//   - an empty body is a ProviderError
//   - anything else is Found and kept verbatim
func Classify(status int, body []byte) Result {
	if status < 200 || status > 299 {
		return ProviderError{Detail: fmt.Sprintf("dictionary provider returned status %d", status)}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ProviderError{Detail: "dictionary provider returned an empty response"}
	}

	if trimmed[0] == '[' {
		var suggestions []string
		if err := json.Unmarshal(trimmed, &suggestions); err == nil {
			if suggestions == nil {
				suggestions = []string{}
			}
			return NotFound{Suggestions: suggestions}
		}
	}

	return Found{Definition: string(body)}
}
