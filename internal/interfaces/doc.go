// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - lookup.Store: Word persistence used by the engine (internal/lookup/engine.go),
//     implemented by words.Repository on top of gorm and sqlite.
//   - http.Pinger: Liveness of the backing store (internal/http/health.go).
//
// ## External Services
//
//   - dictionary.Client: Remote definition lookup (internal/dictionary/client.go).
//     Lookup never returns an error; every response is classified into a
//     dictionary.Result (Found, NotFound or ProviderError).
//
// ## Lookup Workflow
//
//   - http.WordEngine: List, Query, Insert and Remove as used by the handlers
//     (internal/http/words.go).
//   - tasks.WordInserter: The Insert half of the engine, used by the
//     background batch queue (internal/tasks/insert_word.go).
//
// # Adding a Dictionary Provider
//
//  1. Implement dictionary.Client, mapping responses through dictionary.Classify
//     or an equivalent provider-specific classifier.
//  2. Enforce a request timeout in the client itself; the engine relies on it.
//  3. Add a compile-time check to checks.go.
//  4. Wire it in internal/entrypoint/entrypoint.go.
package interfaces
