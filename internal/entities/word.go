package entities

import "time"

// WordEntry is a cached dictionary definition. Word is stored lowercased and
// is the primary key, so at most one entry exists per normalized word.
type WordEntry struct {
	Word       string    `gorm:"primaryKey;size:255" json:"word"`
	Definition string    `gorm:"type:text;not null" json:"definition"` // raw provider payload, stored verbatim
	CreatedAt  time.Time `gorm:"column:date;not null" json:"date"`
}

func (WordEntry) TableName() string {
	return "words"
}
