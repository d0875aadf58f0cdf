// Package datastore archives country database snapshots in SQLite so earlier
// builds can be inspected or restored.
package datastore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
)

// slowQueryThreshold marks archive queries worth a warning.
const slowQueryThreshold = 200 * time.Millisecond

// SnapshotRecord is one archived database build.
type SnapshotRecord struct {
	ID        uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `gorm:"size:64;index" json:"source"`
	Entities  int       `json:"entities"`
	Prefixes  int       `json:"prefixes"`
	Data      []byte    `json:"-"`
}

// BeforeCreate assigns a time-ordered id.
func (r *SnapshotRecord) BeforeCreate(_ *gorm.DB) error {
	if r.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

// Archive stores snapshots through GORM.
type Archive struct {
	db  *gorm.DB
	log logger.Logger
}

// Open opens or creates a SQLite archive at path. ":memory:" is accepted.
func Open(path string, log logger.Logger) (*Archive, error) {
	if log == nil {
		log = GetLogger()
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.NewGormLoggerAdapter(log, slowQueryThreshold),
	})
	if err != nil {
		return nil, dbError(err, "open").Context("path", path).Build()
	}

	// every pooled connection to :memory: would get its own empty database
	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, dbError(err, "open").Build()
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return New(db, log)
}

// New wraps an open connection and migrates the schema.
func New(db *gorm.DB, log logger.Logger) (*Archive, error) {
	if log == nil {
		log = GetLogger()
	}
	if err := db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return nil, dbError(err, "migrate").Build()
	}
	return &Archive{db: db, log: log}, nil
}

// Save archives db under the given source label.
func (a *Archive) Save(ctx context.Context, source string, db *country.Database) (*SnapshotRecord, error) {
	data, err := country.MarshalSnapshot(db)
	if err != nil {
		return nil, err
	}

	stats := db.Stats()
	rec := &SnapshotRecord{
		Timestamp: db.Timestamp,
		Source:    source,
		Entities:  stats.Entities,
		Prefixes:  stats.Records,
		Data:      data,
	}
	if err := a.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, dbError(err, "save").Context("source", source).Build()
	}

	a.log.Info("snapshot archived",
		logger.String("id", rec.ID.String()),
		logger.String("source", source),
		logger.Int("entities", rec.Entities),
		logger.Int("bytes", len(data)))
	return rec, nil
}

// Latest returns the newest snapshot, optionally restricted to a source.
// It returns a not-found error when the archive is empty.
func (a *Archive) Latest(ctx context.Context, source string) (*country.Database, *SnapshotRecord, error) {
	var rec SnapshotRecord
	q := a.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if source != "" {
		q = q.Where("source = ?", source)
	}
	if err := q.First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.NotFound("no archived snapshot for source %q", source)
		}
		return nil, nil, dbError(err, "latest").Build()
	}

	db, err := country.UnmarshalSnapshot(rec.Data)
	if err != nil {
		return nil, nil, err
	}
	return db, &rec, nil
}

// Get loads a snapshot by id.
func (a *Archive) Get(ctx context.Context, id uuid.UUID) (*country.Database, error) {
	var rec SnapshotRecord
	if err := a.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("snapshot %s not found", id)
		}
		return nil, dbError(err, "get").Build()
	}
	return country.UnmarshalSnapshot(rec.Data)
}

// List returns snapshot metadata, newest first, without payloads. A limit of
// zero or less returns everything.
func (a *Archive) List(ctx context.Context, limit int) ([]SnapshotRecord, error) {
	var recs []SnapshotRecord
	q := a.db.WithContext(ctx).
		Select("id", "created_at", "timestamp", "source", "entities", "prefixes").
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, dbError(err, "list").Build()
	}
	return recs, nil
}

// Prune deletes all but the newest keep snapshots and returns the number removed.
func (a *Archive) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 1 {
		return 0, errors.Newf("prune must keep at least one snapshot, got %d", keep).
			Component("datastore").
			Category(errors.CategoryValidation).
			Build()
	}

	newest := a.db.Model(&SnapshotRecord{}).
		Select("id").
		Order("created_at DESC, id DESC").
		Limit(keep)

	res := a.db.WithContext(ctx).
		Where("id NOT IN (?)", newest).
		Delete(&SnapshotRecord{})
	if res.Error != nil {
		return 0, dbError(res.Error, "prune").Build()
	}

	if res.RowsAffected > 0 {
		a.log.Debug("archive pruned",
			logger.Int64("removed", res.RowsAffected),
			logger.Int("kept", keep))
	}
	return res.RowsAffected, nil
}

// Close releases the underlying connection.
func (a *Archive) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return dbError(err, "close").Build()
	}
	return sqlDB.Close()
}

func dbError(err error, operation string) *errors.ErrorBuilder {
	return errors.New(err).
		Component("datastore").
		Category(errors.CategoryDatabase).
		Context("operation", operation)
}
