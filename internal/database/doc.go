// Package database provides the data access layer for the word cache.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── errors.go        # Sentinel errors shared by repositories
//	└── words/           # Word entry persistence
//
// # Usage
//
//	db, err := database.NewDatabase("./words.db")
//	repo := words.NewRepository(db.DB)
//	entry, err := repo.GetWord(ctx, "hurdle")
//
// Repositories translate gorm results into the sentinel errors in this
// package (ErrWordNotFound, ErrDuplicateWord) so callers never inspect
// driver error strings.
//
// # Concurrency
//
// The connection pool is capped at a single connection. Repositories are not
// a transaction boundary: the lookup engine holds its own lock across each
// read-check-write sequence.
package database
