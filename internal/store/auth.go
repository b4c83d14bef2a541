package store

import (
	"fmt"

	"sparkchats-gateway/internal/models"
	api "sparkchats-gateway/pkg/models"
)

// CurrentUser returns the single live user.
func (s *Store) CurrentUser() (models.User, error) {
	var user models.User
	if err := s.db.First(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

// Signup overwrites the current user's name and email. Empty fields keep
// the existing values.
func (s *Store) Signup(req api.SignupRequest) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user models.User
	if err := s.db.First(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if err := s.db.Save(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Login performs no credential check; the mock answers with the current
// user regardless of what was submitted.
func (s *Store) Login(_ api.LoginRequest) (models.User, error) {
	return s.CurrentUser()
}

func (s *Store) ChangeEmail(req api.ChangeEmailRequest) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user models.User
	if err := s.db.First(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if err := s.db.Save(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

func (s *Store) GetOrg() (models.Org, error) {
	var org models.Org
	if err := s.db.First(&org).Error; err != nil {
		return models.Org{}, fmt.Errorf("load org: %w", err)
	}
	return org, nil
}

// UpdateOrg applies the non-nil fields of the update to the org.
func (s *Store) UpdateOrg(update api.OrgUpdate) (models.Org, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var org models.Org
	if err := s.db.First(&org).Error; err != nil {
		return models.Org{}, fmt.Errorf("load org: %w", err)
	}
	if update.Name != nil {
		org.Name = *update.Name
	}
	if update.BusinessPhone != nil {
		org.BusinessPhone = *update.BusinessPhone
	}
	if update.Category != nil {
		org.Category = *update.Category
	}
	if update.WabaStatus != nil {
		org.WabaStatus = *update.WabaStatus
	}
	if err := s.db.Save(&org).Error; err != nil {
		return models.Org{}, fmt.Errorf("save org: %w", err)
	}
	return org, nil
}

// Checkout upgrades the user: role admin, subscribed. The plan value is
// accepted but not stored; subscription state is a single flag.
func (s *Store) Checkout() (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user models.User
	if err := s.db.First(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	user.Role = "admin"
	user.Subscribed = true
	if err := s.db.Save(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}
