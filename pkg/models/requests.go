// Package models defines the wire shapes of the mock API surface: request
// payloads decoded from JSON bodies and the result shapes handlers return.
// Persistence models live in internal/models.
package models

// SignupRequest carries the fields signup is allowed to overwrite.
type SignupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest is accepted but never verified; the mock always answers with
// the current user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangeEmailRequest struct {
	Email string `json:"email"`
}

// OrgUpdate is a field-level partial update. Nil fields leave the org
// untouched; unknown payload keys are dropped during decoding.
type OrgUpdate struct {
	Name          *string `json:"name"`
	BusinessPhone *string `json:"businessPhone"`
	Category      *string `json:"category"`
	WabaStatus    *string `json:"wabaStatus"`
}

type CheckoutRequest struct {
	Plan string `json:"plan"`
}

// ContactSearch filters contacts. An empty query and empty tag set match
// everything.
type ContactSearch struct {
	Query string   `json:"query"`
	Tags  []string `json:"tags"`
}

// ContactUpdate is a field-level partial update addressed by contact id.
type ContactUpdate struct {
	ID    string    `json:"id"`
	Name  *string   `json:"name"`
	Phone *string   `json:"phone"`
	Email *string   `json:"email"`
	Tags  *[]string `json:"tags"`
}

// ContactImportRow is one row of a contact import. Phone is the dedup key.
type ContactImportRow struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Phone string   `json:"phone"`
	Email string   `json:"email"`
	Tags  []string `json:"tags"`
}

type ImportRequest struct {
	Rows []ContactImportRow `json:"rows"`
}

// SendCampaignRequest creates a campaign. A non-empty Schedule defers the
// send; otherwise stats are derived from the selected audience immediately.
type SendCampaignRequest struct {
	Name             string            `json:"name"`
	TemplateID       string            `json:"templateId"`
	Schedule         string            `json:"schedule"`
	SelectedContacts []string          `json:"selectedContacts"`
	Variables        map[string]string `json:"variables"`
}

// CampaignRef addresses an existing campaign by id.
type CampaignRef struct {
	ID string `json:"id"`
}

type SendMessageRequest struct {
	ConversationID string `json:"conversationId"`
	Body           string `json:"body"`
	MediaURL       string `json:"mediaUrl"`
}
