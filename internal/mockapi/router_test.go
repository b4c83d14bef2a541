package mockapi

import (
	"testing"

	"sparkchats-gateway/internal/config"
	"sparkchats-gateway/internal/database"
	"sparkchats-gateway/internal/logging"
	"sparkchats-gateway/internal/models"
	"sparkchats-gateway/internal/store"
	api "sparkchats-gateway/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArmer struct {
	armed [][2]string
}

func (f *fakeArmer) Arm(conversationID, messageID string) {
	f.armed = append(f.armed, [2]string{conversationID, messageID})
}

type fakeEvents struct {
	campaigns []string
}

func (f *fakeEvents) CampaignCreated(campaignID, _ string) {
	f.campaigns = append(f.campaigns, campaignID)
}

func newTestRouter(t *testing.T) (*Router, *fakeArmer, *fakeEvents) {
	t.Helper()
	log := logging.New(nil, "silent")
	db, err := database.Open(&config.Config{DBDriver: "sqlite"})
	require.NoError(t, err)
	st := store.New(db, log)
	require.NoError(t, st.Seed())

	armer := &fakeArmer{}
	events := &fakeEvents{}
	router, err := New(st, armer, events, log)
	require.NoError(t, err)
	return router, armer, events
}

func TestValidateRoutesAcceptsTable(t *testing.T) {
	router, _, _ := newTestRouter(t)
	assert.NoError(t, validateRoutes(router.routes))
}

func TestValidateRoutesRejectsShadowing(t *testing.T) {
	bad := []route{
		{"/campaigns", nil},
		{"/campaigns/send", nil},
	}
	err := validateRoutes(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/campaigns")
}

func TestUnmatchedRouteReturnsEmptyObject(t *testing.T) {
	router, _, _ := newTestRouter(t)

	data, err := router.Handle("get", "/definitely/not/a/route", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, data)
}

func TestMalformedBodyDegradesToEmpty(t *testing.T) {
	router, _, _ := newTestRouter(t)

	// Malformed JSON text must not fail; searchContacts sees an empty
	// request and matches everything.
	data, err := router.Handle("post", "/contacts", "{not json")
	require.NoError(t, err)
	envelope, ok := data.(map[string]any)
	require.True(t, ok)
	contacts, ok := envelope["contacts"].([]models.Contact)
	require.True(t, ok)
	assert.Len(t, contacts, 60)
}

func TestPrefixPriority(t *testing.T) {
	router, _, _ := newTestRouter(t)

	// /campaigns/send must not be swallowed by /campaigns.
	data, err := router.Handle("post", "/campaigns/send", api.SendCampaignRequest{
		Name:             "Routed",
		TemplateID:       "t1",
		SelectedContacts: []string{"contact-1", "contact-2"},
	})
	require.NoError(t, err)
	envelope := data.(map[string]any)
	campaign, ok := envelope["campaign"].(models.Campaign)
	require.True(t, ok)
	assert.Equal(t, "Routed", campaign.Name)

	// /campaigns still lists.
	data, err = router.Handle("get", "/campaigns", nil)
	require.NoError(t, err)
	campaigns := data.(map[string]any)["campaigns"].([]models.Campaign)
	assert.Len(t, campaigns, 2)
}

func TestGetTemplateByPathSegment(t *testing.T) {
	router, _, _ := newTestRouter(t)

	data, err := router.Handle("get", "/templates/t2", nil)
	require.NoError(t, err)
	template, ok := data.(map[string]any)["template"].(*models.Template)
	require.True(t, ok)
	assert.Equal(t, "Order Update", template.Name)

	// Unknown ids answer with a null payload, not an error.
	data, err = router.Handle("get", "/templates/t404", nil)
	require.NoError(t, err)
	assert.Nil(t, data.(map[string]any)["template"])
}

func TestAuthRoutes(t *testing.T) {
	router, _, _ := newTestRouter(t)

	data, err := router.Handle("post", "/auth/signup", api.SignupRequest{Name: "Nadia", Email: "nadia@demo.io"})
	require.NoError(t, err)
	user := data.(map[string]any)["user"].(models.User)
	assert.Equal(t, "Nadia", user.Name)

	for _, path := range []string{"/auth/verifyEmail", "/auth/forgot", "/auth/reset"} {
		data, err := router.Handle("post", path, nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"success": true}, data)
	}

	data, err = router.Handle("get", "/auth/me", nil)
	require.NoError(t, err)
	envelope := data.(map[string]any)
	assert.Equal(t, "Nadia", envelope["user"].(models.User).Name)
	assert.Equal(t, "Green Studio", envelope["org"].(models.Org).Name)
}

func TestSubscriptionRoutes(t *testing.T) {
	router, _, _ := newTestRouter(t)

	data, err := router.Handle("get", "/subscriptions", nil)
	require.NoError(t, err)
	assert.Equal(t, "trial", data.(map[string]any)["plan"])

	data, err = router.Handle("post", "/subscriptions/checkout", api.CheckoutRequest{Plan: "pro"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"plan": "pro", "subscribed": true}, data)

	data, err = router.Handle("get", "/subscriptions", nil)
	require.NoError(t, err)
	assert.Equal(t, "pro", data.(map[string]any)["plan"])
}

func TestSendMessageArmsDelivery(t *testing.T) {
	router, armer, _ := newTestRouter(t)

	data, err := router.Handle("post", "/messaging/send", api.SendMessageRequest{
		ConversationID: "conv-1",
		Body:           "hello",
	})
	require.NoError(t, err)
	message := data.(map[string]any)["message"].(*models.Message)

	require.Len(t, armer.armed, 1)
	assert.Equal(t, "conv-1", armer.armed[0][0])
	assert.Equal(t, message.ID, armer.armed[0][1])
}

func TestSendMessageUnknownConversationPropagates(t *testing.T) {
	router, armer, _ := newTestRouter(t)

	_, err := router.Handle("post", "/messaging/send", api.SendMessageRequest{
		ConversationID: "conv-404",
		Body:           "hello?",
	})
	assert.ErrorIs(t, err, store.ErrConversationNotFound)
	assert.Empty(t, armer.armed)
}

func TestCampaignEventsPublished(t *testing.T) {
	router, _, events := newTestRouter(t)

	_, err := router.Handle("post", "/campaigns/send", api.SendCampaignRequest{
		Name:             "Announced",
		SelectedContacts: []string{"contact-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c2"}, events.campaigns)
}

func TestCampaignStatsRoute(t *testing.T) {
	router, _, _ := newTestRouter(t)

	data, err := router.Handle("post", "/campaigns/stats", api.CampaignRef{ID: "c1"})
	require.NoError(t, err)
	envelope := data.(map[string]any)
	stats := envelope["stats"].(models.CampaignStats)
	assert.Equal(t, 2200, stats.Sent)
	timeline := envelope["timeline"].([]models.TimelinePoint)
	assert.Len(t, timeline, 6)

	data, err = router.Handle("post", "/campaigns/stats", api.CampaignRef{ID: "c404"})
	require.NoError(t, err)
	assert.Nil(t, data.(map[string]any)["campaign"])
}

func TestCampaignExportRoute(t *testing.T) {
	router, _, _ := newTestRouter(t)

	data, err := router.Handle("get", "/campaigns/export", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://mock.sparkchats.app/export/campaign.csv", data.(map[string]any)["url"])
}

func TestConversationRoutes(t *testing.T) {
	router, _, _ := newTestRouter(t)

	data, err := router.Handle("get", "/messaging/conversation/conv-2", nil)
	require.NoError(t, err)
	conversation := data.(map[string]any)["conversation"].(*models.Conversation)
	assert.Equal(t, "VIP Sale Circle", conversation.Name)

	data, err = router.Handle("get", "/messaging/list", nil)
	require.NoError(t, err)
	conversations := data.(map[string]any)["conversations"].([]models.Conversation)
	assert.Len(t, conversations, 2)
}
