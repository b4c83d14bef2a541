package store

import (
	"testing"

	api "sparkchats-gateway/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	s := newTestStore(t)

	message, err := s.SendMessage(api.SendMessageRequest{
		ConversationID: "conv-2",
		Body:           "Early access opens at 9am.",
	})
	require.NoError(t, err)

	assert.Equal(t, "sending", message.Status)
	assert.Equal(t, "u1", message.AuthorID)
	assert.NotEmpty(t, message.ID)

	conversation, err := s.GetConversation("conv-2")
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 2)
	assert.Equal(t, message.ID, conversation.Messages[1].ID, "message is appended")
	assert.Zero(t, conversation.Unread, "sending resets the unread counter")
}

func TestSendMessageUnknownConversation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SendMessage(api.SendMessageRequest{ConversationID: "conv-404", Body: "hello?"})
	assert.ErrorIs(t, err, ErrConversationNotFound)

	// Nothing was created.
	conversations, err := s.ListConversations()
	require.NoError(t, err)
	total := 0
	for _, c := range conversations {
		total += len(c.Messages)
	}
	assert.Equal(t, 3, total)
}

func TestMessageIDsUniqueUnderRapidSends(t *testing.T) {
	s := newTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		message, err := s.SendMessage(api.SendMessageRequest{ConversationID: "conv-1", Body: "burst"})
		require.NoError(t, err)
		assert.False(t, seen[message.ID], "duplicate message id %s", message.ID)
		seen[message.ID] = true
	}
}

func TestAdvanceMessageStatusForwardOnly(t *testing.T) {
	s := newTestStore(t)

	message, err := s.SendMessage(api.SendMessageRequest{ConversationID: "conv-1", Body: "status test"})
	require.NoError(t, err)

	applied, err := s.AdvanceMessageStatus("conv-1", message.ID, "sent")
	require.NoError(t, err)
	assert.True(t, applied)

	// Regression is a no-op.
	applied, err = s.AdvanceMessageStatus("conv-1", message.ID, "sending")
	require.NoError(t, err)
	assert.False(t, applied)

	// Same status again is a no-op.
	applied, err = s.AdvanceMessageStatus("conv-1", message.ID, "sent")
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = s.AdvanceMessageStatus("conv-1", message.ID, "delivered")
	require.NoError(t, err)
	assert.True(t, applied)
	applied, err = s.AdvanceMessageStatus("conv-1", message.ID, "read")
	require.NoError(t, err)
	assert.True(t, applied)

	conversation, err := s.GetConversation("conv-1")
	require.NoError(t, err)
	last := conversation.Messages[len(conversation.Messages)-1]
	assert.Equal(t, "read", last.Status)
}

func TestAdvanceMessageStatusMissingEntities(t *testing.T) {
	s := newTestStore(t)

	applied, err := s.AdvanceMessageStatus("conv-404", "msg-1", "sent")
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = s.AdvanceMessageStatus("conv-1", "msg-404", "sent")
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = s.AdvanceMessageStatus("conv-1", "msg-1", "teleported")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestGetConversationUnknownID(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetConversation("conv-404")
	assert.ErrorIs(t, err, ErrNotFound)
}
