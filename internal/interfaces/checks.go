package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/wordcache/internal/cli"
	"github.com/mrlokans/wordcache/internal/database"
	"github.com/mrlokans/wordcache/internal/database/words"
	"github.com/mrlokans/wordcache/internal/dictionary"
	"github.com/mrlokans/wordcache/internal/http"
	"github.com/mrlokans/wordcache/internal/lookup"
	"github.com/mrlokans/wordcache/internal/tasks"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Store implementations
var _ lookup.Store = (*words.Repository)(nil)

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// External Services
// =============================================================================

// DictionaryClient implementations
var _ dictionary.Client = (*dictionary.MerriamWebsterClient)(nil)

// ProviderError doubles as an error value.
var _ error = dictionary.ProviderError{}

// =============================================================================
// Lookup Workflow
// =============================================================================

// The engine backs both the HTTP layer and the batch queue.
var _ http.WordEngine = (*lookup.Engine)(nil)
var _ tasks.WordInserter = (*lookup.Engine)(nil)

// =============================================================================
// CLI
// =============================================================================

var _ interface {
	ParseFlags(args []string) error
	Run() error
} = (*cli.ListCommand)(nil)

var _ interface {
	ParseFlags(args []string) error
	Run() error
} = (*cli.InsertCommand)(nil)
