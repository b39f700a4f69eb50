package domain

import "encoding/json"

// Account is a registered user's credential and profile record.
// Rest holds whatever extra fields the client submitted at signup
// (name, phone, ...); the store puts no schema on them.
type Account struct {
	ID       string
	Email    string
	Password string
	Rest     map[string]any
}

// Sanitized returns a copy of the account with the password removed.
// Every account that leaves the service through an API response must
// pass through here first.
func (a *Account) Sanitized() *Account {
	out := *a
	out.Password = ""
	return &out
}

// MarshalJSON flattens Rest into the top-level object, the same shape
// the legacy backend stored and returned. An empty password is omitted
// entirely rather than serialized as "".
func (a Account) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Rest)+3)
	for k, v := range a.Rest {
		out[k] = v
	}
	if a.ID != "" {
		out["_id"] = a.ID
	}
	out["email"] = a.Email
	if a.Password != "" {
		out["password"] = a.Password
	}
	return json.Marshal(out)
}

func (a *Account) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["_id"].(string); ok {
		a.ID = v
	}
	if v, ok := raw["email"].(string); ok {
		a.Email = v
	}
	if v, ok := raw["password"].(string); ok {
		a.Password = v
	}
	delete(raw, "_id")
	delete(raw, "email")
	delete(raw, "password")
	if len(raw) > 0 {
		a.Rest = raw
	} else {
		a.Rest = nil
	}
	return nil
}

// ListingFields are the scalar fields of a property listing. All of
// them are optional at the storage layer and are stored verbatim as the
// strings the client submitted (multipart form values, including price).
type ListingFields struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Location     string `json:"location,omitempty"`
	Price        string `json:"price,omitempty"`
	OwnerEmail   string `json:"ownerEmail,omitempty"`
	Bedrooms     string `json:"bedrooms,omitempty"`
	Bathrooms    string `json:"bathrooms,omitempty"`
	EntranceType string `json:"entranceType,omitempty"`
	Gas          string `json:"gas,omitempty"`
	Internet     string `json:"internet,omitempty"`
	Water        string `json:"water,omitempty"`
	Electricity  string `json:"electricity,omitempty"`
	Garage       string `json:"garage,omitempty"`
	Kitchen      string `json:"kitchen,omitempty"`
}

// MaxListingImages caps the number of attachments a single listing can
// carry, matching the upload limit of the multipart endpoint.
const MaxListingImages = 5

// Listing is a rental-property record with its attachments embedded
// inline. Images keep insertion order.
type Listing struct {
	ID string `json:"_id,omitempty"`
	ListingFields
	Images []Attachment `json:"images,omitempty"`
}
