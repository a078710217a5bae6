// Package lookup implements the cache-first word workflow.
//
// Reads (Query, List) only ever touch local storage. Insert is the single
// path that contacts the dictionary provider, and it never overwrites an
// existing entry. Every storage interaction is serialized by one mutex; the
// provider call itself runs without holding it.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/mrlokans/wordcache/internal/database"
	"github.com/mrlokans/wordcache/internal/dictionary"
	"github.com/mrlokans/wordcache/internal/entities"
)

// MaxWordLength bounds a normalized word.
const MaxWordLength = 255

// ErrInvalidWord is returned for empty or oversized words.
var ErrInvalidWord = errors.New("invalid word")

// Store is the persistence the engine needs. Implementations report a
// missing entry as database.ErrWordNotFound and a create over an existing
// entry as database.ErrDuplicateWord.
type Store interface {
	GetWord(ctx context.Context, word string) (*entities.WordEntry, error)
	CreateWord(ctx context.Context, entry *entities.WordEntry) error
	DeleteWord(ctx context.Context, word string) error
	ListWords(ctx context.Context) ([]string, error)
}

// Engine orchestrates local storage and the dictionary provider.
type Engine struct {
	mu    sync.Mutex
	store Store
	dict  dictionary.Client
	now   func() time.Time

	// inflight tracks inserts whose provider call outlives the request.
	inflight sync.WaitGroup
}

// NewEngine creates an engine over the given store and provider.
func NewEngine(store Store, dict dictionary.Client) *Engine {
	return &Engine{
		store: store,
		dict:  dict,
		now:   time.Now,
	}
}

// Normalize lowercases and trims a word. It returns ErrInvalidWord when
// nothing is left or the word is too long to store.
func Normalize(word string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	if len(normalized) > MaxWordLength {
		return "", fmt.Errorf("%w: longer than %d bytes", ErrInvalidWord, MaxWordLength)
	}
	return normalized, nil
}

// List returns all stored words. An empty store yields an empty slice.
func (e *Engine) List(ctx context.Context) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	words, err := e.store.ListWords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

// Query reads a word from local storage only. A miss is reported as
// OutcomeNotFoundLocally; the provider is never contacted.
func (e *Engine) Query(ctx context.Context, word string) (Outcome, error) {
	normalized, err := Normalize(word)
	if err != nil {
		return Outcome{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	entry, err := e.store.GetWord(ctx, normalized)
	if errors.Is(err, database.ErrWordNotFound) {
		return Outcome{Kind: OutcomeNotFoundLocally, Word: normalized}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("get word %q: %w", normalized, err)
	}
	return Outcome{Kind: OutcomeHit, Word: normalized, Entry: entry}, nil
}

// Remove deletes a stored word. Removing a word that is not stored is
// reported as OutcomeNotFoundLocally, never as success.
func (e *Engine) Remove(ctx context.Context, word string) (Outcome, error) {
	normalized, err := Normalize(word)
	if err != nil {
		return Outcome{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.store.GetWord(ctx, normalized); err != nil {
		if errors.Is(err, database.ErrWordNotFound) {
			return Outcome{Kind: OutcomeNotFoundLocally, Word: normalized}, nil
		}
		return Outcome{}, fmt.Errorf("get word %q: %w", normalized, err)
	}

	if err := e.store.DeleteWord(ctx, normalized); err != nil {
		if errors.Is(err, database.ErrWordNotFound) {
			return Outcome{Kind: OutcomeNotFoundLocally, Word: normalized}, nil
		}
		return Outcome{}, fmt.Errorf("delete word %q: %w", normalized, err)
	}

	log.Printf("[LOOKUP] Removed %q", normalized)
	return Outcome{Kind: OutcomeRemoved, Word: normalized}, nil
}

type insertResult struct {
	outcome Outcome
	err     error
}

// Insert fetches a word from the provider and stores it.
//
// An existing entry short-circuits to OutcomeDuplicateRejected before any
// provider call. The provider call and the final write run detached from
// ctx: if the caller goes away mid-flight, Insert returns ctx's error while
// the fetch still completes, persists and logs its result.
func (e *Engine) Insert(ctx context.Context, word string) (Outcome, error) {
	normalized, err := Normalize(word)
	if err != nil {
		return Outcome{}, err
	}

	exists, err := e.exists(ctx, normalized)
	if err != nil {
		return Outcome{}, err
	}
	if exists {
		return Outcome{Kind: OutcomeDuplicateRejected, Word: normalized}, nil
	}

	done := make(chan insertResult, 1)
	detached := context.WithoutCancel(ctx)

	e.inflight.Add(1)
	go func() {
		defer e.inflight.Done()
		outcome, err := e.fetchAndStore(detached, normalized)
		done <- insertResult{outcome: outcome, err: err}
	}()

	select {
	case res := <-done:
		return res.outcome, res.err
	case <-ctx.Done():
		go func() {
			res := <-done
			if res.err != nil {
				log.Printf("[LOOKUP] Detached insert of %q failed: %v", normalized, res.err)
				return
			}
			log.Printf("[LOOKUP] Detached insert of %q finished after caller left: %s", normalized, res.outcome.Kind)
		}()
		return Outcome{}, fmt.Errorf("insert %q: %w", normalized, ctx.Err())
	}
}

// Wait blocks until detached inserts have finished or ctx is done.
// It reports whether everything finished.
func (e *Engine) Wait(ctx context.Context) bool {
	finished := make(chan struct{})
	go func() {
		e.inflight.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return true
	case <-ctx.Done():
		return false
	}
}

func (e *Engine) exists(ctx context.Context, word string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.store.GetWord(ctx, word)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, database.ErrWordNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("get word %q: %w", word, err)
}

func (e *Engine) fetchAndStore(ctx context.Context, word string) (Outcome, error) {
	switch res := e.dict.Lookup(ctx, word).(type) {
	case dictionary.Found:
		return e.persist(ctx, word, res.Definition)

	case dictionary.NotFound:
		suggestions := res.Suggestions
		if suggestions == nil {
			suggestions = []string{}
		}
		return Outcome{Kind: OutcomeRemoteNotFound, Word: word, Suggestions: suggestions}, nil

	case dictionary.ProviderError:
		log.Printf("[LOOKUP] Provider %s failed for %q: %v", e.dict.Name(), word, res)
		return Outcome{Kind: OutcomeRemoteUnavailable, Word: word, Detail: res.Detail}, nil

	default:
		return Outcome{}, fmt.Errorf("lookup %q: unexpected provider result %T", word, res)
	}
}

// persist stores a fetched definition. Existence is re-checked under the
// lock; the store's uniqueness constraint is the final arbiter.
func (e *Engine) persist(ctx context.Context, word, definition string) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.store.GetWord(ctx, word)
	if err == nil {
		return Outcome{Kind: OutcomeDuplicateRejected, Word: word}, nil
	}
	if !errors.Is(err, database.ErrWordNotFound) {
		return Outcome{}, fmt.Errorf("get word %q: %w", word, err)
	}

	entry := &entities.WordEntry{
		Word:       word,
		Definition: definition,
		CreatedAt:  e.now().UTC(),
	}
	if err := e.store.CreateWord(ctx, entry); err != nil {
		if errors.Is(err, database.ErrDuplicateWord) {
			return Outcome{Kind: OutcomeDuplicateRejected, Word: word}, nil
		}
		return Outcome{}, fmt.Errorf("create word %q: %w", word, err)
	}

	log.Printf("[LOOKUP] Stored %q", word)
	return Outcome{Kind: OutcomeCreated, Word: word, Entry: entry}, nil
}
