package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountSanitizedStripsPassword(t *testing.T) {
	account := &Account{ID: "abc", Email: "a@x.com", Password: "secret", Rest: map[string]any{"name": "A"}}
	clean := account.Sanitized()

	assert.Empty(t, clean.Password)
	assert.Equal(t, "a@x.com", clean.Email)
	// the original must keep its password
	assert.Equal(t, "secret", account.Password)
}

func TestAccountJSONFlattensRest(t *testing.T) {
	account := Account{
		ID:       "abc",
		Email:    "a@x.com",
		Password: "secret",
		Rest:     map[string]any{"name": "A", "phone": "123"},
	}

	data, err := json.Marshal(account)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "a@x.com", raw["email"])
	assert.Equal(t, "A", raw["name"])
	assert.Equal(t, "123", raw["phone"])
	assert.Equal(t, "secret", raw["password"])

	var decoded Account
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, account, decoded)
}

func TestAccountJSONOmitsEmptyPassword(t *testing.T) {
	data, err := json.Marshal(Account{Email: "a@x.com"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	_, has := raw["password"]
	assert.False(t, has)
}

func TestListingJSONRoundTrip(t *testing.T) {
	listing := Listing{
		ID: "some-id",
		ListingFields: ListingFields{
			Title:      "Room A",
			Price:      "100",
			OwnerEmail: "a@x.com",
		},
		Images: []Attachment{
			{Data: []byte{1, 2, 3}, ContentType: "image/png"},
			{Data: []byte{4, 5}, ContentType: "image/jpeg"},
		},
	}

	data, err := json.Marshal(listing)
	require.NoError(t, err)

	var decoded Listing
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, listing, decoded)
}
