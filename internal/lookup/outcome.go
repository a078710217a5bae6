package lookup

import "github.com/mrlokans/wordcache/internal/entities"

// OutcomeKind classifies the result of an Engine operation.
type OutcomeKind int

const (
	// OutcomeHit: the word was served from local storage.
	OutcomeHit OutcomeKind = iota + 1
	// OutcomeCreated: the word was fetched from the provider and stored.
	OutcomeCreated
	// OutcomeDuplicateRejected: an entry already exists; nothing was written.
	OutcomeDuplicateRejected
	// OutcomeRemoteNotFound: the provider does not know the word.
	OutcomeRemoteNotFound
	// OutcomeRemoteUnavailable: the provider could not be reached or failed.
	OutcomeRemoteUnavailable
	// OutcomeNotFoundLocally: the word is not stored.
	OutcomeNotFoundLocally
	// OutcomeRemoved: the stored entry was deleted.
	OutcomeRemoved
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeHit:
		return "hit"
	case OutcomeCreated:
		return "created"
	case OutcomeDuplicateRejected:
		return "duplicate_rejected"
	case OutcomeRemoteNotFound:
		return "remote_not_found"
	case OutcomeRemoteUnavailable:
		return "remote_unavailable"
	case OutcomeNotFoundLocally:
		return "not_found_locally"
	case OutcomeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Outcome is the per-request result of an Engine operation. Only the fields
// relevant to Kind are set.
type Outcome struct {
	Kind OutcomeKind

	// Word is the normalized word the operation ran against.
	Word string

	// Entry is set for OutcomeHit and OutcomeCreated.
	Entry *entities.WordEntry

	// Suggestions is set for OutcomeRemoteNotFound. It may be empty.
	Suggestions []string

	// Detail is a client-safe description for OutcomeRemoteUnavailable.
	Detail string
}
