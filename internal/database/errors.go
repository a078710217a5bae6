package database

import "errors"

var (
	// ErrWordNotFound is returned when no entry exists for a word.
	ErrWordNotFound = errors.New("word not found")

	// ErrDuplicateWord is returned when creating an entry for a word that is already stored.
	ErrDuplicateWord = errors.New("word already exists")
)
