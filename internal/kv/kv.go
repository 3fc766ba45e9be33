package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/model"
)

// Fixed document keys. One key holds one whole JSON-serialized collection.
const (
	KeyMachines     = "machines"
	KeyStations     = "stations"
	KeyUser         = "user"
	KeyProductTypes = "product_types"
)

// Store is the key-value adapter over the collections table. Reads and
// writes are always whole-document; callers read-modify-write under their
// own serialization.
type Store interface {
	Get(ctx context.Context, key string, out any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Has(ctx context.Context, key string) (bool, error)
}

type gormKV struct {
	db *gorm.DB
}

// New creates a GORM-backed key-value store.
func New(db *gorm.DB) Store {
	return &gormKV{db: db}
}

// Get unmarshals the document stored under key into out. A missing key
// leaves out untouched, so callers starting from an empty slice see an
// empty collection rather than an error.
func (s *gormKV) Get(ctx context.Context, key string, out any) error {
	var row model.Collection
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read collection %q: %w", key, err)
	}
	if err := json.Unmarshal(row.Data, out); err != nil {
		return fmt.Errorf("failed to decode collection %q: %w", key, err)
	}
	return nil
}

// Set serializes value and upserts it under key.
func (s *gormKV) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", key, err)
	}
	row := model.Collection{Key: key, Data: data, UpdatedAt: time.Now().UTC()}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to write collection %q: %w", key, err)
	}
	return nil
}

// Delete removes the document under key. Deleting an absent key is not an
// error.
func (s *gormKV) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&model.Collection{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete collection %q: %w", key, err)
	}
	return nil
}

// Has reports whether a document exists under key.
func (s *gormKV) Has(ctx context.Context, key string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Collection{}).Where("key = ?", key).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to probe collection %q: %w", key, err)
	}
	return count > 0, nil
}
