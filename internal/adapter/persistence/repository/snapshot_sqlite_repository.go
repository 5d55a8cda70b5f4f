package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type snapshotRecord struct {
	StorageKey string `gorm:"primaryKey;column:storage_key"`
	Payload    string `gorm:"column:payload;type:text;not null"`
	UpdatedAt  time.Time
}

func (snapshotRecord) TableName() string { return "snapshots" }

// SnapshotSQLRepository stores one row per storage key through gorm. Any gorm
// dialect works; the service wires SQLite.
type SnapshotSQLRepository struct {
	db *gorm.DB
}

var _ interfaces.ISnapshotRepository = (*SnapshotSQLRepository)(nil)

// NewSnapshotSQLRepository migrates the snapshots table.
func NewSnapshotSQLRepository(db *gorm.DB) (*SnapshotSQLRepository, error) {
	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		return nil, err
	}
	return &SnapshotSQLRepository{db: db}, nil
}

func (r *SnapshotSQLRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var rec snapshotRecord
	err := r.db.WithContext(ctx).First(&rec, "storage_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(rec.Payload), nil
}

func (r *SnapshotSQLRepository) Save(ctx context.Context, key string, data []byte) error {
	rec := snapshotRecord{StorageKey: key, Payload: string(data), UpdatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
}

func (r *SnapshotSQLRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&snapshotRecord{}, "storage_key = ?", key).Error
}
