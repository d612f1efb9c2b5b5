package persistence

import (
	"time"
)

// SearchRunModel represents the search_runs table. The winning mix is stored
// as a JSON array so it round-trips in order.
type SearchRunModel struct {
	ID         string    `gorm:"column:id;primaryKey;not null"`
	Engine     string    `gorm:"column:engine;not null;index"`
	Product    string    `gorm:"column:product;not null;index"`
	MaxDepth   int       `gorm:"column:max_depth;not null"`
	Mix        string    `gorm:"column:mix;type:text"`
	Profit     float64   `gorm:"column:profit;not null"`
	Sequences  uint64    `gorm:"column:sequences;not null;default:0"`
	DurationMs int64     `gorm:"column:duration_ms;not null;default:0"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

func (SearchRunModel) TableName() string {
	return "search_runs"
}
