// Package fixtures holds the static seed dataset the mock backend boots
// from. Every function builds a fresh value, so callers can mutate the
// result without leaking state into later store instances.
package fixtures

import (
	"fmt"
	"math"
	"time"

	"sparkchats-gateway/internal/models"
)

var contactTags = []string{"VIP", "New", "Loyal"}

func User() models.User {
	return models.User{
		ID:         "u1",
		Name:       "Soukaina",
		Email:      "soukaina@demo.io",
		Language:   "en",
		Role:       "user",
		Subscribed: false,
	}
}

func Org() models.Org {
	return models.Org{
		ID:            "org1",
		Name:          "Green Studio",
		BusinessPhone: "+212600000000",
		Category:      "Retail",
		WabaStatus:    "pending",
	}
}

// Contacts returns 60 seeded contacts with sequential Moroccan numbers and
// cycling tags.
func Contacts() []models.Contact {
	contacts := make([]models.Contact, 0, 60)
	for i := 1; i <= 60; i++ {
		email := ""
		if (i-1)%3 == 0 {
			email = fmt.Sprintf("contact%d@demo.io", i)
		}
		contacts = append(contacts, models.Contact{
			ID:    fmt.Sprintf("contact-%d", i),
			Name:  fmt.Sprintf("Contact %d", i),
			Phone: fmt.Sprintf("+21260%07d", i),
			Email: email,
			Tags:  []string{contactTags[(i-1)%len(contactTags)]},
		})
	}
	return contacts
}

func Templates() []models.Template {
	return []models.Template{
		{
			ID:        "t1",
			Name:      "Limited Time Offer",
			Type:      "MARKETING",
			Language:  "en",
			Variables: []string{"{{name}}", "{{discount}}"},
			MediaType: "image",
		},
		{
			ID:        "t2",
			Name:      "Order Update",
			Type:      "UTILITY",
			Language:  "en",
			Variables: []string{"{{name}}", "{{orderId}}"},
		},
	}
}

// Campaigns returns the single finished seed campaign with a six-point
// timeline at 15-minute intervals.
func Campaigns() []models.Campaign {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	timeline := make([]models.TimelinePoint, 0, 6)
	for i := 0; i < 6; i++ {
		sent := 500 + i*280
		timeline = append(timeline, models.TimelinePoint{
			T:         base.Add(time.Duration(i) * 15 * time.Minute).Format(time.RFC3339),
			Sent:      sent,
			Delivered: int(math.Round(float64(sent) * 0.95)),
			Read:      int(math.Round(float64(sent) * 0.66)),
			Failed:    int(math.Round(float64(sent) * 0.05)),
		})
	}

	return []models.Campaign{
		{
			Seq:        1,
			ID:         "c1",
			Name:       "Spring Sale 2025",
			TemplateID: "t1",
			Schedule:   "2025-06-01T10:00:00Z",
			Status:     "done",
			Stats: models.CampaignStats{
				Sent:      2200,
				Delivered: 2100,
				Read:      1480,
				Failed:    100,
				CTR:       0.11,
			},
			Timeline: timeline,
		},
	}
}

func Conversations() []models.Conversation {
	now := time.Now().UTC()
	return []models.Conversation{
		{
			ID:             "conv-1",
			Name:           "Amal Benali",
			Type:           "direct",
			ParticipantIDs: []string{"contact-1"},
			Unread:         0,
			Messages: []models.Message{
				{
					ID:             "msg-1",
					ConversationID: "conv-1",
					AuthorID:       "contact-1",
					Body:           "Hi! Is the Spring sale still available?",
					Status:         "read",
					CreatedAt:      now,
				},
				{
					ID:             "msg-2",
					ConversationID: "conv-1",
					AuthorID:       "u1",
					Body:           "Hello Amal! Yes, it is available until Friday.",
					Status:         "read",
					CreatedAt:      now,
				},
			},
		},
		{
			ID:             "conv-2",
			Name:           "VIP Sale Circle",
			Type:           "group",
			ParticipantIDs: []string{"contact-2", "contact-3", "contact-4"},
			Unread:         3,
			Messages: []models.Message{
				{
					ID:             "msg-3",
					ConversationID: "conv-2",
					AuthorID:       "contact-2",
					Body:           "Can we get early access tomorrow?",
					Status:         "delivered",
					CreatedAt:      now,
				},
			},
		},
	}
}

func Notifications() []models.Notification {
	return []models.Notification{
		{
			ID:        "n1",
			Type:      "campaign",
			Title:     "Campaign delivered",
			Body:      "Spring Sale 2025 reached 2,100 customers.",
			Read:      false,
			CreatedAt: time.Now().UTC(),
		},
	}
}
