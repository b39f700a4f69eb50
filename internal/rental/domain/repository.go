package domain

import "context"

// AccountRepository owns account records. Accounts are created once and
// never updated or deleted. Duplicate emails are not rejected;
// FindByEmail returns the first match encountered.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) (string, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
}

// ListingRepository owns property listings and their embedded
// attachments. Update replaces the scalar fields; images are left
// untouched unless a non-nil replacement slice is supplied.
type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) (string, error)
	FindAll(ctx context.Context) ([]*Listing, error)
	FindByID(ctx context.Context, id string) (*Listing, error)
	Update(ctx context.Context, id string, fields ListingFields, images []Attachment) (*Listing, error)
	Delete(ctx context.Context, id string) error
}

// PostRepository is the minimal free-form record store used by the
// file-backed variant: the whole container is read on every call and
// rewritten in full on every write.
type PostRepository interface {
	LoadAll(ctx context.Context) ([]map[string]any, error)
	Append(ctx context.Context, record map[string]any) (map[string]any, error)
	Update(ctx context.Context, id string, fields map[string]any) (map[string]any, error)
	Delete(ctx context.Context, id string) error
}
