package store

import (
	"fmt"

	"sparkchats-gateway/internal/models"
)

func (s *Store) ListNotifications() ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.db.Order("id ASC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationsRead flags every notification as read and returns the
// full list.
func (s *Store) MarkNotificationsRead() ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Model(&models.Notification{}).Where("read = ?", false).Update("read", true).Error
	if err != nil {
		return nil, fmt.Errorf("mark notifications read: %w", err)
	}

	var notifications []models.Notification
	if err := s.db.Order("id ASC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	return notifications, nil
}
