package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRecord is the database row behind one key-value entry.
type StateRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Scope uint8  `json:"scope" gorm:"uniqueIndex:idx_state_scope_key;not null"`
	Key   string `json:"key" gorm:"uniqueIndex:idx_state_scope_key;not null"`
	Value []byte `json:"value"`
}

func (StateRecord) TableName() string {
	return "state_records"
}

// GormStore persists the key space in a state_records table and mirrors
// it in memory, so reads never touch the database and Apply is the only
// operation that can fail.
type GormStore struct {
	db     *gorm.DB
	mirror *MemoryStore
}

// OpenGormStore loads the full key space into the in-memory mirror. The
// state is small (one row per entity), so a full load at startup is fine.
func OpenGormStore(db *gorm.DB) (*GormStore, error) {
	var records []StateRecord
	if err := db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load state records: %w", err)
	}

	mirror, err := buildMirror(records)
	if err != nil {
		return nil, err
	}

	return &GormStore{db: db, mirror: mirror}, nil
}

// buildMirror indexes the rows by class, rejecting any row whose scope
// is not a known class rather than indexing past the class table.
func buildMirror(records []StateRecord) (*MemoryStore, error) {
	mirror := NewMemoryStore()
	for _, r := range records {
		if r.Scope > uint8(Persistent) {
			return nil, fmt.Errorf("state record %q has invalid scope %d", r.Key, r.Scope)
		}
		mirror.classes[Class(r.Scope)][r.Key] = r.Value
	}
	return mirror, nil
}

func (s *GormStore) Get(c Class, key string) ([]byte, bool) {
	return s.mirror.Get(c, key)
}

func (s *GormStore) Has(c Class, key string) bool {
	return s.mirror.Has(c, key)
}

// Apply upserts the batch inside one database transaction and refreshes
// the mirror only after the transaction commits.
func (s *GormStore) Apply(writes []Write) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, w := range writes {
			record := StateRecord{Scope: uint8(w.Class), Key: w.Key, Value: w.Value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "scope"}, {Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to apply state writes: %w", err)
	}

	return s.mirror.Apply(writes)
}
