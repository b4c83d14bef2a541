package store

import (
	"errors"
	"fmt"
	"strings"

	"sparkchats-gateway/internal/models"
	api "sparkchats-gateway/pkg/models"

	"gorm.io/gorm"
)

// SearchContacts filters by case-insensitive substring on name or phone and
// by OR-matching tags. Empty query and empty tag set return the whole
// collection in insertion order.
func (s *Store) SearchContacts(search api.ContactSearch) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.db.Order("seq ASC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}

	query := strings.ToLower(search.Query)
	filtered := make([]models.Contact, 0, len(contacts))
	for _, contact := range contacts {
		matchesQuery := query == "" ||
			strings.Contains(strings.ToLower(contact.Name), query) ||
			strings.Contains(contact.Phone, query)
		if !matchesQuery {
			continue
		}
		if !matchesAnyTag(contact.Tags, search.Tags) {
			continue
		}
		filtered = append(filtered, contact)
	}
	return filtered, nil
}

func matchesAnyTag(contactTags, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		for _, t := range contactTags {
			if t == w {
				return true
			}
		}
	}
	return false
}

// UpdateContact applies the non-nil fields of the update to the contact
// addressed by id. Returns ErrNotFound when the id has no match.
func (s *Store) UpdateContact(update api.ContactUpdate) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var contact models.Contact
	err := s.db.Where("id = ?", update.ID).First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load contact %s: %w", update.ID, err)
	}

	if update.Name != nil {
		contact.Name = *update.Name
	}
	if update.Phone != nil {
		contact.Phone = *update.Phone
	}
	if update.Email != nil {
		contact.Email = *update.Email
	}
	if update.Tags != nil {
		contact.Tags = *update.Tags
	}
	if err := s.db.Save(&contact).Error; err != nil {
		return nil, fmt.Errorf("save contact %s: %w", update.ID, err)
	}
	return &contact, nil
}

// ImportContacts appends rows whose phone is not yet in the store. Rows with
// a known phone are skipped, never merged, and reported in the error list.
func (s *Store) ImportContacts(rows []api.ContactImportRow) (api.ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var existing []models.Contact
	if err := s.db.Select("phone").Find(&existing).Error; err != nil {
		return api.ImportResult{}, fmt.Errorf("load contacts: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[c.Phone] = true
	}

	result := api.ImportResult{Errors: []api.ImportError{}}
	for _, row := range rows {
		if seen[row.Phone] {
			result.Skipped++
			result.Errors = append(result.Errors, api.ImportError{
				Contact: row,
				Reason:  "Duplicate phone",
			})
			continue
		}
		contact := models.Contact{
			ID:    row.ID,
			Name:  row.Name,
			Phone: row.Phone,
			Email: row.Email,
			Tags:  row.Tags,
		}
		if contact.Tags == nil {
			contact.Tags = []string{}
		}
		if err := s.db.Create(&contact).Error; err != nil {
			return result, fmt.Errorf("import contact %s: %w", row.Phone, err)
		}
		seen[row.Phone] = true
		result.Added++
	}

	s.log.Debug().Int("added", result.Added).Int("skipped", result.Skipped).Msg("contacts imported")
	return result, nil
}
