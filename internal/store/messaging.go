package store

import (
	"errors"
	"fmt"
	"time"

	"sparkchats-gateway/internal/models"
	api "sparkchats-gateway/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newMessageID builds a time-based id that stays unique under rapid
// successive sends.
func newMessageID() string {
	return fmt.Sprintf("msg-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// ListConversations returns every conversation with its messages in append
// order.
func (s *Store) ListConversations() ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := s.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Order("id ASC").
		Find(&conversations).Error
	if err != nil {
		return nil, fmt.Errorf("load conversations: %w", err)
	}
	return conversations, nil
}

func (s *Store) GetConversation(id string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := s.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Where("id = ?", id).
		First(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation %s: %w", id, err)
	}
	return &conversation, nil
}

// SendMessage appends a message in status "sending" and resets the
// conversation's unread counter. Unlike the other lookups this fails loudly
// when the conversation does not exist; the caller is expected to surface
// the error.
func (s *Store) SendMessage(req api.SendMessageRequest) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var conversation models.Conversation
	err := s.db.Where("id = ?", req.ConversationID).First(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation %s: %w", req.ConversationID, err)
	}

	message := models.Message{
		ID:             newMessageID(),
		ConversationID: conversation.ID,
		AuthorID:       "u1",
		Body:           req.Body,
		MediaURL:       req.MediaURL,
		Status:         "sending",
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	if err := s.db.Model(&conversation).Update("unread", 0).Error; err != nil {
		return nil, fmt.Errorf("reset unread: %w", err)
	}

	s.log.Debug().Str("conversation", conversation.ID).Str("message", message.ID).Msg("message queued")
	return &message, nil
}

// AdvanceMessageStatus moves a message forward in the delivery lifecycle.
// It re-resolves conversation and message by id at call time; a missing
// entity, an unknown status, or a non-forward transition is a silent no-op.
// Returns whether the transition was applied.
func (s *Store) AdvanceMessageStatus(conversationID, messageID, status string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := statusRank[status]
	if !ok {
		return false, nil
	}

	var conversation models.Conversation
	err := s.db.Where("id = ?", conversationID).First(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load conversation %s: %w", conversationID, err)
	}

	var message models.Message
	err = s.db.Where("id = ? AND conversation_id = ?", messageID, conversationID).First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load message %s: %w", messageID, err)
	}

	if next <= statusRank[message.Status] {
		return false, nil
	}
	if err := s.db.Model(&message).Update("status", status).Error; err != nil {
		return false, fmt.Errorf("update message %s: %w", messageID, err)
	}
	return true, nil
}
