package store

import (
	"errors"
	"fmt"
	"math"
	"time"

	"sparkchats-gateway/internal/models"
	api "sparkchats-gateway/pkg/models"

	"gorm.io/gorm"
)

// deriveStats computes the deterministic aggregate counters for an
// immediately sent campaign of the given audience size.
func deriveStats(audience int) models.CampaignStats {
	return models.CampaignStats{
		Sent:      audience,
		Delivered: int(math.Round(float64(audience) * 0.95)),
		Read:      int(math.Round(float64(audience) * 0.70)),
		Failed:    int(math.Round(float64(audience) * 0.05)),
		CTR:       0.12,
	}
}

// ListCampaigns returns campaigns most-recent-first.
func (s *Store) ListCampaigns() ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := s.db.Order("seq DESC").Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("load campaigns: %w", err)
	}
	return campaigns, nil
}

// CreateCampaign builds a campaign from the request and prepends it to the
// collection. Scheduled campaigns start pending with zeroed stats and an
// empty timeline; immediate campaigns get derived stats and a single
// timeline point stamped now.
func (s *Store) CreateCampaign(req api.SendCampaignRequest) (models.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	if err := s.db.Model(&models.Campaign{}).Count(&count).Error; err != nil {
		return models.Campaign{}, fmt.Errorf("count campaigns: %w", err)
	}

	campaign := models.Campaign{
		Seq:        count + 1,
		ID:         fmt.Sprintf("c%d", count+1),
		Name:       req.Name,
		TemplateID: req.TemplateID,
		Schedule:   req.Schedule,
		Status:     "sending",
		Timeline:   []models.TimelinePoint{},
	}
	if req.Schedule != "" {
		campaign.Status = "pending"
	} else {
		campaign.Stats = deriveStats(len(req.SelectedContacts))
		campaign.Timeline = []models.TimelinePoint{
			{
				T:         time.Now().UTC().Format(time.RFC3339),
				Sent:      campaign.Stats.Sent,
				Delivered: campaign.Stats.Delivered,
				Read:      campaign.Stats.Read,
				Failed:    campaign.Stats.Failed,
			},
		}
	}

	if err := s.db.Create(&campaign).Error; err != nil {
		return models.Campaign{}, fmt.Errorf("create campaign: %w", err)
	}
	s.log.Info().Str("id", campaign.ID).Str("status", campaign.Status).Msg("campaign created")
	return campaign, nil
}

func (s *Store) GetCampaign(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := s.db.Where("id = ?", id).First(&campaign).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load campaign %s: %w", id, err)
	}
	return &campaign, nil
}

// DuplicateCampaign deep-copies an existing campaign under a new id with
// " Copy" appended to the name and status forced back to pending. The copy
// is prepended like any new campaign.
func (s *Store) DuplicateCampaign(id string) (*models.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var original models.Campaign
	err := s.db.Where("id = ?", id).First(&original).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load campaign %s: %w", id, err)
	}

	var count int64
	if err := s.db.Model(&models.Campaign{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count campaigns: %w", err)
	}

	duplicate := original
	duplicate.Seq = count + 1
	duplicate.ID = fmt.Sprintf("c%d", count+1)
	duplicate.Name = original.Name + " Copy"
	duplicate.Status = "pending"
	duplicate.Timeline = append([]models.TimelinePoint{}, original.Timeline...)

	if err := s.db.Create(&duplicate).Error; err != nil {
		return nil, fmt.Errorf("duplicate campaign %s: %w", id, err)
	}
	return &duplicate, nil
}
