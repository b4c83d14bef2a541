// Package mockapi implements the request router of the mock backend: an
// ordered table of path prefixes dispatched first-match-wins, the way the
// real gateway's client sees the API surface.
package mockapi

import (
	"fmt"
	"strings"

	"sparkchats-gateway/internal/logging"
	"sparkchats-gateway/internal/store"
)

// handlerFunc serves one matched route. Bodies arrive as raw payloads and
// are decoded defensively by each handler.
type handlerFunc func(method, path string, body any) (any, error)

type route struct {
	prefix  string
	handler handlerFunc
}

// Armer schedules the delivery lifecycle for a newly created message.
type Armer interface {
	Arm(conversationID, messageID string)
}

// Events receives side-channel notifications about state changes. All
// methods must tolerate being called from request goroutines.
type Events interface {
	CampaignCreated(campaignID, name string)
}

// Router dispatches (method, path, body) triples onto the store. Method is
// carried for parity with the HTTP surface but never consulted: routing is
// by path prefix only.
type Router struct {
	store  *store.Store
	armer  Armer
	events Events
	log    *logging.Logger
	routes []route
}

// New builds the router and validates the route table: an earlier prefix
// covering a later one would make the later route unreachable, so that is
// rejected at construction time rather than discovered as silent
// misrouting in production.
func New(st *store.Store, armer Armer, events Events, log *logging.Logger) (*Router, error) {
	r := &Router{store: st, armer: armer, events: events, log: log.Sub("mockapi")}
	r.routes = []route{
		{"/auth/signup", r.handleSignup},
		{"/auth/login", r.handleLogin},
		{"/auth/verifyEmail", r.handleSuccess},
		{"/auth/forgot", r.handleSuccess},
		{"/auth/reset", r.handleSuccess},
		{"/auth/changeEmail", r.handleChangeEmail},
		{"/auth/me", r.handleMe},
		{"/org/update", r.handleUpdateOrg},
		{"/org", r.handleGetOrg},
		{"/subscriptions/checkout", r.handleCheckout},
		{"/subscriptions", r.handleSubscription},
		{"/contacts/import", r.handleImportContacts},
		{"/contacts/update", r.handleUpdateContact},
		{"/contacts", r.handleSearchContacts},
		{"/templates/", r.handleGetTemplate},
		{"/templates", r.handleListTemplates},
		{"/campaigns/send", r.handleSendCampaign},
		{"/campaigns/stats", r.handleCampaignStats},
		{"/campaigns/duplicate", r.handleDuplicateCampaign},
		{"/campaigns/export", r.handleExportCampaign},
		{"/campaigns/", r.handleGetCampaign},
		{"/campaigns", r.handleListCampaigns},
		{"/messaging/send", r.handleSendMessage},
		{"/messaging/conversation", r.handleGetConversation},
		{"/messaging/list", r.handleListConversations},
		{"/notifications/markRead", r.handleMarkNotifications},
		{"/notifications", r.handleListNotifications},
	}
	if err := validateRoutes(r.routes); err != nil {
		return nil, err
	}
	return r, nil
}

// validateRoutes enforces the most-specific-first ordering invariant.
func validateRoutes(routes []route) error {
	for i := 0; i < len(routes); i++ {
		for j := i + 1; j < len(routes); j++ {
			if strings.HasPrefix(routes[j].prefix, routes[i].prefix) {
				return fmt.Errorf("route %q shadows later route %q", routes[i].prefix, routes[j].prefix)
			}
		}
	}
	return nil
}

// Handle resolves the first route whose prefix matches the path. Unmatched
// paths are not errors: they answer with an empty object.
func (r *Router) Handle(method, path string, body any) (any, error) {
	for _, rt := range r.routes {
		if strings.HasPrefix(path, rt.prefix) {
			return rt.handler(method, path, body)
		}
	}
	r.log.Debug().Str("path", path).Msg("unmatched route")
	return map[string]any{}, nil
}

// lastSegment extracts the trailing path element, e.g. the id in
// /templates/t1.
func lastSegment(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}
