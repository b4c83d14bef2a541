package store

import (
	"errors"
	"fmt"

	"sparkchats-gateway/internal/models"

	"gorm.io/gorm"
)

func (s *Store) ListTemplates() ([]models.Template, error) {
	var templates []models.Template
	if err := s.db.Order("id ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return templates, nil
}

func (s *Store) GetTemplate(id string) (*models.Template, error) {
	var template models.Template
	err := s.db.Where("id = ?", id).First(&template).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load template %s: %w", id, err)
	}
	return &template, nil
}
