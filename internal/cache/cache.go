// Package cache implements the optional Parse Cache (SPEC_FULL.md
// §4.10/§9): a SQLite-backed record of previously-seen
// (normalizedPath, content hash) pairs, letting a host skip re-feeding
// files it already parsed in a prior run. Disabled unless a host opens
// one explicitly; never affects parse results.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Record is the gorm-tagged persistence shape for one previously-parsed
// file, per SPEC_FULL.md §3.
type Record struct {
	ID             uint `gorm:"primaryKey"`
	NormalizedPath string `gorm:"uniqueIndex"`
	ContentHash    string
	ParsedAt       int64
}

// Store wraps a *gorm.DB holding Records, grounded on the teacher
// corpus's gorm.Open(sqlite.Open(dsn), &gorm.Config{}) +
// db.AutoMigrate(...) bootstrap idiom (btouchard-gmx's
// examples/main.go), repurposed from an application persistence layer
// into a frontend-local incremental-build aid.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if necessary) a SQLite database at dsn and
// migrates the Record schema into it.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// HashContent returns the hex-encoded sha256 digest of text, the
// ContentHash value Has/Record compare against.
func HashContent(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Has reports whether normalizedPath was last recorded with exactly
// contentHash, meaning a host may skip re-parsing it.
func (s *Store) Has(normalizedPath, contentHash string) (bool, error) {
	var rec Record
	err := s.db.Where("normalized_path = ?", normalizedPath).First(&rec).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return rec.ContentHash == contentHash, nil
}

// Record upserts the (normalizedPath, contentHash, parsedAt) triple.
func (s *Store) Record(normalizedPath, contentHash string, parsedAt int64) error {
	var rec Record
	err := s.db.Where("normalized_path = ?", normalizedPath).First(&rec).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		return s.db.Create(&Record{
			NormalizedPath: normalizedPath,
			ContentHash:    contentHash,
			ParsedAt:       parsedAt,
		}).Error
	case err != nil:
		return err
	default:
		rec.ContentHash = contentHash
		rec.ParsedAt = parsedAt
		return s.db.Save(&rec).Error
	}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
