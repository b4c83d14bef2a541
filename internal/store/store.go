// Package store owns the mutable mock dataset. Every instance wraps its own
// database handle, so parallel tests and parallel app instances never share
// state.
package store

import (
	"errors"
	"fmt"
	"sync"

	"sparkchats-gateway/internal/fixtures"
	"sparkchats-gateway/internal/logging"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by every lookup whose id has no match.
	ErrNotFound = errors.New("not found")
	// ErrConversationNotFound propagates to the caller of SendMessage.
	ErrConversationNotFound = errors.New("Conversation not found")
)

// statusRank orders the delivery lifecycle. A message status may only move
// to a strictly higher rank.
var statusRank = map[string]int{
	"sending":   0,
	"sent":      1,
	"delivered": 2,
	"read":      3,
}

type Store struct {
	db  *gorm.DB
	log *logging.Logger

	// Serializes read-modify-write sequences; delivery timers mutate the
	// store concurrently with handler calls.
	mu sync.Mutex
}

func New(db *gorm.DB, log *logging.Logger) *Store {
	return &Store{db: db, log: log.Sub("store")}
}

// Seed loads the fixture snapshot. Call once on a freshly migrated database.
func (s *Store) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		user := fixtures.User()
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		org := fixtures.Org()
		if err := tx.Create(&org).Error; err != nil {
			return fmt.Errorf("seed org: %w", err)
		}
		contacts := fixtures.Contacts()
		if err := tx.Create(&contacts).Error; err != nil {
			return fmt.Errorf("seed contacts: %w", err)
		}
		templates := fixtures.Templates()
		if err := tx.Create(&templates).Error; err != nil {
			return fmt.Errorf("seed templates: %w", err)
		}
		campaigns := fixtures.Campaigns()
		if err := tx.Create(&campaigns).Error; err != nil {
			return fmt.Errorf("seed campaigns: %w", err)
		}
		conversations := fixtures.Conversations()
		if err := tx.Create(&conversations).Error; err != nil {
			return fmt.Errorf("seed conversations: %w", err)
		}
		notifications := fixtures.Notifications()
		if err := tx.Create(&notifications).Error; err != nil {
			return fmt.Errorf("seed notifications: %w", err)
		}
		return nil
	})
}
