package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRecord is one row of kanban_states: a key and its serialized state.
type StateRecord struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (StateRecord) TableName() string {
	return "kanban_states"
}

type PostgresRepository struct {
	db  *gorm.DB
	key string
}

func NewPostgresRepository(db *gorm.DB, key string) *PostgresRepository {
	if key == "" {
		key = DefaultStateKey
	}
	return &PostgresRepository{db: db, key: key}
}

// Get loads the blob stored under the repository key
func (r *PostgresRepository) Get(ctx context.Context) ([]byte, bool, error) {
	var records []StateRecord
	if err := r.db.WithContext(ctx).Where("key = ?", r.key).Find(&records).Error; err != nil {
		return nil, false, fmt.Errorf("%w: load %s: %w", ErrPersistence, r.key, err)
	}
	if len(records) == 0 {
		return nil, false, nil
	}
	return []byte(records[0].Value), true, nil
}

// Set upserts the blob so the row always holds the full latest state
func (r *PostgresRepository) Set(ctx context.Context, data []byte) error {
	record := StateRecord{Key: r.key, Value: string(data)}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("%w: store %s: %w", ErrPersistence, r.key, err)
	}
	return nil
}
