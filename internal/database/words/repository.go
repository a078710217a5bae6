// Package words provides persistence for cached word entries.
//
// The repository is the storage adapter behind the lookup engine: plain
// get/create/delete/list operations with no business rules. Create has
// create-if-absent semantics and reports an existing row as
// database.ErrDuplicateWord instead of overwriting it.
package words

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/wordcache/internal/database"
	"github.com/mrlokans/wordcache/internal/entities"
)

// Repository handles all word entry database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new word repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetWord retrieves the entry for word, or database.ErrWordNotFound.
func (r *Repository) GetWord(ctx context.Context, word string) (*entities.WordEntry, error) {
	var entry entities.WordEntry
	err := r.db.WithContext(ctx).Where("word = ?", word).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrWordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateWord inserts entry unless a row with the same word already exists.
func (r *Repository) CreateWord(ctx context.Context, entry *entities.WordEntry) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entry)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrDuplicateWord
	}
	return nil
}

// DeleteWord removes the entry for word, or returns database.ErrWordNotFound.
func (r *Repository) DeleteWord(ctx context.Context, word string) error {
	result := r.db.WithContext(ctx).Where("word = ?", word).Delete(&entities.WordEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.ErrWordNotFound
	}
	return nil
}

// ListWords returns every stored word, without definitions.
func (r *Repository) ListWords(ctx context.Context) ([]string, error) {
	var words []string
	err := r.db.WithContext(ctx).Model(&entities.WordEntry{}).Order("word").Pluck("word", &words).Error
	if err != nil {
		return nil, err
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}
