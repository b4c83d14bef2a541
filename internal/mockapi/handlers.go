package mockapi

import (
	"errors"

	"sparkchats-gateway/internal/store"
	api "sparkchats-gateway/pkg/models"
)

// The handlers translate route hits into store calls and wrap the results
// in the envelope objects the app expects. Lookups that miss answer with a
// null payload; only sendMessage propagates its error.

func (r *Router) handleSuccess(_, _ string, _ any) (any, error) {
	return map[string]any{"success": true}, nil
}

func (r *Router) handleSignup(_, _ string, body any) (any, error) {
	var req api.SignupRequest
	decodeBody(body, &req)
	user, err := r.store.Signup(req)
	if err != nil {
		return nil, err
	}
	return map[string]any{"user": user}, nil
}

func (r *Router) handleLogin(_, _ string, body any) (any, error) {
	var req api.LoginRequest
	decodeBody(body, &req)
	user, err := r.store.Login(req)
	if err != nil {
		return nil, err
	}
	return map[string]any{"user": user}, nil
}

func (r *Router) handleChangeEmail(_, _ string, body any) (any, error) {
	var req api.ChangeEmailRequest
	decodeBody(body, &req)
	user, err := r.store.ChangeEmail(req)
	if err != nil {
		return nil, err
	}
	return map[string]any{"user": user}, nil
}

func (r *Router) handleMe(_, _ string, _ any) (any, error) {
	user, err := r.store.CurrentUser()
	if err != nil {
		return nil, err
	}
	org, err := r.store.GetOrg()
	if err != nil {
		return nil, err
	}
	return map[string]any{"user": user, "org": org}, nil
}

func (r *Router) handleUpdateOrg(_, _ string, body any) (any, error) {
	var update api.OrgUpdate
	decodeBody(body, &update)
	org, err := r.store.UpdateOrg(update)
	if err != nil {
		return nil, err
	}
	return map[string]any{"org": org}, nil
}

func (r *Router) handleGetOrg(_, _ string, _ any) (any, error) {
	org, err := r.store.GetOrg()
	if err != nil {
		return nil, err
	}
	return map[string]any{"org": org}, nil
}

func (r *Router) handleCheckout(_, _ string, body any) (any, error) {
	var req api.CheckoutRequest
	decodeBody(body, &req)
	if _, err := r.store.Checkout(); err != nil {
		return nil, err
	}
	return map[string]any{"plan": "pro", "subscribed": true}, nil
}

func (r *Router) handleSubscription(_, _ string, _ any) (any, error) {
	user, err := r.store.CurrentUser()
	if err != nil {
		return nil, err
	}
	plan := "trial"
	if user.Subscribed {
		plan = "pro"
	}
	return map[string]any{"plan": plan, "subscribed": user.Subscribed}, nil
}

func (r *Router) handleImportContacts(_, _ string, body any) (any, error) {
	var req api.ImportRequest
	decodeBody(body, &req)
	result, err := r.store.ImportContacts(req.Rows)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Router) handleUpdateContact(_, _ string, body any) (any, error) {
	var update api.ContactUpdate
	decodeBody(body, &update)
	contact, err := r.store.UpdateContact(update)
	if errors.Is(err, store.ErrNotFound) {
		return map[string]any{"contact": nil}, nil
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{"contact": contact}, nil
}

func (r *Router) handleSearchContacts(_, _ string, body any) (any, error) {
	var search api.ContactSearch
	decodeBody(body, &search)
	contacts, err := r.store.SearchContacts(search)
	if err != nil {
		return nil, err
	}
	return map[string]any{"contacts": contacts}, nil
}

func (r *Router) handleGetTemplate(_, path string, _ any) (any, error) {
	template, err := r.store.GetTemplate(lastSegment(path))
	if errors.Is(err, store.ErrNotFound) {
		return map[string]any{"template": nil}, nil
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{"template": template}, nil
}

func (r *Router) handleListTemplates(_, _ string, _ any) (any, error) {
	templates, err := r.store.ListTemplates()
	if err != nil {
		return nil, err
	}
	return map[string]any{"templates": templates}, nil
}

func (r *Router) handleSendCampaign(_, _ string, body any) (any, error) {
	var req api.SendCampaignRequest
	decodeBody(body, &req)
	campaign, err := r.store.CreateCampaign(req)
	if err != nil {
		return nil, err
	}
	if r.events != nil {
		r.events.CampaignCreated(campaign.ID, campaign.Name)
	}
	return map[string]any{"campaign": campaign}, nil
}

func (r *Router) handleCampaignStats(_, _ string, body any) (any, error) {
	var ref api.CampaignRef
	decodeBody(body, &ref)
	campaign, err := r.store.GetCampaign(ref.ID)
	if errors.Is(err, store.ErrNotFound) {
		return map[string]any{"campaign": nil}, nil
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{"stats": campaign.Stats, "timeline": campaign.Timeline}, nil
}

func (r *Router) handleDuplicateCampaign(_, _ string, body any) (any, error) {
	var ref api.CampaignRef
	decodeBody(body, &ref)
	duplicate, err := r.store.DuplicateCampaign(ref.ID)
	if errors.Is(err, store.ErrNotFound) {
		return map[string]any{"campaign": nil}, nil
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{"campaign": duplicate}, nil
}

func (r *Router) handleExportCampaign(_, _ string, _ any) (any, error) {
	return map[string]any{"url": "https://mock.sparkchats.app/export/campaign.csv"}, nil
}

func (r *Router) handleGetCampaign(_, path string, _ any) (any, error) {
	campaign, err := r.store.GetCampaign(lastSegment(path))
	if errors.Is(err, store.ErrNotFound) {
		return map[string]any{"campaign": nil}, nil
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{"campaign": campaign}, nil
}

func (r *Router) handleListCampaigns(_, _ string, _ any) (any, error) {
	campaigns, err := r.store.ListCampaigns()
	if err != nil {
		return nil, err
	}
	return map[string]any{"campaigns": campaigns}, nil
}

func (r *Router) handleSendMessage(_, _ string, body any) (any, error) {
	var req api.SendMessageRequest
	decodeBody(body, &req)
	message, err := r.store.SendMessage(req)
	if err != nil {
		// Conversation not found is the one failure this surface raises.
		return nil, err
	}
	if r.armer != nil {
		r.armer.Arm(req.ConversationID, message.ID)
	}
	return map[string]any{"message": message}, nil
}

func (r *Router) handleGetConversation(_, path string, _ any) (any, error) {
	conversation, err := r.store.GetConversation(lastSegment(path))
	if errors.Is(err, store.ErrNotFound) {
		return map[string]any{"conversation": nil}, nil
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{"conversation": conversation}, nil
}

func (r *Router) handleListConversations(_, _ string, _ any) (any, error) {
	conversations, err := r.store.ListConversations()
	if err != nil {
		return nil, err
	}
	return map[string]any{"conversations": conversations}, nil
}

func (r *Router) handleMarkNotifications(_, _ string, _ any) (any, error) {
	notifications, err := r.store.MarkNotificationsRead()
	if err != nil {
		return nil, err
	}
	return map[string]any{"notifications": notifications}, nil
}

func (r *Router) handleListNotifications(_, _ string, _ any) (any, error) {
	notifications, err := r.store.ListNotifications()
	if err != nil {
		return nil, err
	}
	return map[string]any{"notifications": notifications}, nil
}
