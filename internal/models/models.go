package models

import (
	"time"
)

// User is the account owner. The mock backend tracks exactly one live user.
type User struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(255)" json:"name"`
	Email      string `gorm:"type:varchar(255)" json:"email"`
	Language   string `gorm:"type:varchar(10)" json:"language"` // en, fr, ar
	Role       string `gorm:"type:varchar(20)" json:"role"`     // user, admin
	Subscribed bool   `json:"subscribed"`
}

func (User) TableName() string {
	return "users"
}

// Org is the business the user manages. One live instance per process.
type Org struct {
	ID            string `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"type:varchar(255)" json:"name"`
	BusinessPhone string `gorm:"type:varchar(50)" json:"businessPhone"`
	Category      string `gorm:"type:varchar(100)" json:"category"`
	WabaStatus    string `gorm:"type:varchar(20)" json:"wabaStatus"` // pending, active, disconnected
}

func (Org) TableName() string {
	return "orgs"
}

// Contact is an audience member. Phone is the dedup key for imports.
type Contact struct {
	Seq       uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID        string    `gorm:"uniqueIndex;type:varchar(64)" json:"id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Phone     string    `gorm:"uniqueIndex;type:varchar(50)" json:"phone"`
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Tags      []string  `gorm:"serializer:json;type:text" json:"tags"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Contact) TableName() string {
	return "contacts"
}

// Template is a message template. Read-only fixture data in this backend.
type Template struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	Name      string   `gorm:"type:varchar(255)" json:"name"`
	Type      string   `gorm:"type:varchar(50)" json:"type"` // MARKETING, UTILITY
	Language  string   `gorm:"type:varchar(10)" json:"language"`
	Variables []string `gorm:"serializer:json;type:text" json:"variables"`
	MediaType string   `gorm:"type:varchar(20)" json:"mediaType,omitempty"` // image, video, text
}

func (Template) TableName() string {
	return "templates"
}

// CampaignStats holds the aggregate counters of a campaign.
type CampaignStats struct {
	Sent      int     `json:"sent"`
	Delivered int     `json:"delivered"`
	Read      int     `json:"read"`
	Failed    int     `json:"failed"`
	CTR       float64 `json:"ctr"`
}

// TimelinePoint is one periodic snapshot of the campaign counters.
type TimelinePoint struct {
	T         string `json:"t"`
	Sent      int    `json:"sent"`
	Delivered int    `json:"delivered"`
	Read      int    `json:"read"`
	Failed    int    `json:"failed"`
}

// Campaign is a template broadcast to a selected audience. Campaigns are
// listed most-recent-first; Seq preserves that insertion order.
type Campaign struct {
	Seq        int64           `gorm:"index" json:"-"`
	ID         string          `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"type:varchar(255)" json:"name"`
	TemplateID string          `gorm:"type:varchar(64)" json:"templateId"`
	Schedule   string          `gorm:"type:varchar(64)" json:"schedule"`
	Status     string          `gorm:"type:varchar(20)" json:"status"` // pending, sending, done, failed
	Stats      CampaignStats   `gorm:"embedded;embeddedPrefix:stat_" json:"stats"`
	Timeline   []TimelinePoint `gorm:"serializer:json;type:text" json:"timeline"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// Conversation is a direct or group chat thread.
type Conversation struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(255)" json:"name"`
	Type           string    `gorm:"type:varchar(20)" json:"type"` // direct, group
	ParticipantIDs []string  `gorm:"serializer:json;type:text" json:"participantIds"`
	Messages       []Message `gorm:"foreignKey:ConversationID;references:ID" json:"messages"`
	Unread         int       `json:"unread"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// Message is one chat message. Status only ever advances through
// sending, sent, delivered, read.
type Message struct {
	Seq            uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID             string    `gorm:"uniqueIndex;type:varchar(64)" json:"id"`
	ConversationID string    `gorm:"index;type:varchar(64)" json:"-"`
	AuthorID       string    `gorm:"type:varchar(64)" json:"authorId"`
	Body           string    `gorm:"type:text" json:"body"`
	MediaURL       string    `gorm:"type:text" json:"mediaUrl,omitempty"`
	Status         string    `gorm:"type:varchar(20)" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Message) TableName() string {
	return "messages"
}

// Notification is an in-app notification entry.
type Notification struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"type:varchar(50)" json:"type"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
