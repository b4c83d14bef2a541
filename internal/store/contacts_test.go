package store

import (
	"fmt"
	"testing"

	api "sparkchats-gateway/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchContactsEmptyReturnsAllInOrder(t *testing.T) {
	s := newTestStore(t)

	contacts, err := s.SearchContacts(api.ContactSearch{})
	require.NoError(t, err)
	require.Len(t, contacts, 60)
	for i, contact := range contacts {
		assert.Equal(t, fmt.Sprintf("contact-%d", i+1), contact.ID)
	}
}

func TestSearchContactsByQuery(t *testing.T) {
	s := newTestStore(t)

	// Case-insensitive substring on name.
	contacts, err := s.SearchContacts(api.ContactSearch{Query: "contact 6"})
	require.NoError(t, err)
	require.NotEmpty(t, contacts)
	assert.Equal(t, "Contact 6", contacts[0].Name)

	// Substring on phone.
	contacts, err = s.SearchContacts(api.ContactSearch{Query: "+212600000042"})
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "contact-42", contacts[0].ID)

	contacts, err = s.SearchContacts(api.ContactSearch{Query: "no such contact"})
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestSearchContactsByTags(t *testing.T) {
	s := newTestStore(t)

	// Tags cycle VIP, New, Loyal over 60 contacts: 20 each.
	contacts, err := s.SearchContacts(api.ContactSearch{Tags: []string{"VIP"}})
	require.NoError(t, err)
	assert.Len(t, contacts, 20)

	// Tag filter is OR-match.
	contacts, err = s.SearchContacts(api.ContactSearch{Tags: []string{"VIP", "New"}})
	require.NoError(t, err)
	assert.Len(t, contacts, 40)

	// Query and tags combine.
	contacts, err = s.SearchContacts(api.ContactSearch{Query: "contact 1", Tags: []string{"VIP"}})
	require.NoError(t, err)
	for _, contact := range contacts {
		assert.Contains(t, contact.Tags, "VIP")
	}
}

func TestUpdateContact(t *testing.T) {
	s := newTestStore(t)

	name := "Renamed"
	tags := []string{"VIP", "Loyal"}
	contact, err := s.UpdateContact(api.ContactUpdate{ID: "contact-3", Name: &name, Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", contact.Name)
	assert.Equal(t, tags, contact.Tags)
	// Fields left nil keep their values.
	assert.Equal(t, "+212600000003", contact.Phone)
}

func TestUpdateContactUnknownID(t *testing.T) {
	s := newTestStore(t)

	name := "Ghost"
	_, err := s.UpdateContact(api.ContactUpdate{ID: "contact-999", Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestImportContactsDedup(t *testing.T) {
	s := newTestStore(t)

	rows := []api.ContactImportRow{
		{ID: "import-1", Name: "Dup", Phone: "+212600000001"},
		{ID: "import-2", Name: "Fresh", Phone: "+212699999999"},
	}
	result, err := s.ImportContacts(rows)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, len(rows), result.Added+result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Duplicate phone", result.Errors[0].Reason)
	assert.Equal(t, "+212600000001", result.Errors[0].Contact.Phone)

	// The new contact is appended, the duplicate never overwrites.
	contacts, err := s.SearchContacts(api.ContactSearch{})
	require.NoError(t, err)
	require.Len(t, contacts, 61)
	assert.Equal(t, "import-2", contacts[60].ID)
	assert.Equal(t, "Contact 1", contacts[0].Name)
}

func TestImportContactsDedupWithinBatch(t *testing.T) {
	s := newTestStore(t)

	rows := []api.ContactImportRow{
		{ID: "import-1", Name: "First", Phone: "+212688888888"},
		{ID: "import-2", Name: "Second", Phone: "+212688888888"},
	}
	result, err := s.ImportContacts(rows)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Skipped)

	contacts, err := s.SearchContacts(api.ContactSearch{Query: "+212688888888"})
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "First", contacts[0].Name)
}
