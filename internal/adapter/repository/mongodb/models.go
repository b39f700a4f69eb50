package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/itxsomi270/back-end/internal/rental/domain"
)

// accountDocument is the storage shape of an Account in the "signup"
// collection. The inline map carries whatever extra fields the client
// submitted, exactly as the legacy backend spread req.body into the
// document.
type accountDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Extra    map[string]any     `bson:",inline"`
}

type attachmentDocument struct {
	Data        []byte `bson:"data"`
	ContentType string `bson:"contentType"`
}

// listingDocument is the storage shape of a Listing in the
// "rent-your-space" collection. Images are embedded inline; there is no
// external object reference.
type listingDocument struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Title        string               `bson:"title,omitempty"`
	Description  string               `bson:"description,omitempty"`
	Location     string               `bson:"location,omitempty"`
	Price        string               `bson:"price,omitempty"`
	OwnerEmail   string               `bson:"ownerEmail,omitempty"`
	Bedrooms     string               `bson:"bedrooms,omitempty"`
	Bathrooms    string               `bson:"bathrooms,omitempty"`
	EntranceType string               `bson:"entranceType,omitempty"`
	Gas          string               `bson:"gas,omitempty"`
	Internet     string               `bson:"internet,omitempty"`
	Water        string               `bson:"water,omitempty"`
	Electricity  string               `bson:"electricity,omitempty"`
	Garage       string               `bson:"garage,omitempty"`
	Kitchen      string               `bson:"kitchen,omitempty"`
	Images       []attachmentDocument `bson:"images,omitempty"`
}

func fromDomainAccount(a *domain.Account) *accountDocument {
	return &accountDocument{
		Email:    a.Email,
		Password: a.Password,
		Extra:    a.Rest,
	}
}

func toDomainAccount(d *accountDocument) *domain.Account {
	return &domain.Account{
		ID:       d.ID.Hex(),
		Email:    d.Email,
		Password: d.Password,
		Rest:     d.Extra,
	}
}

func fromDomainAttachments(images []domain.Attachment) []attachmentDocument {
	if images == nil {
		return nil
	}
	docs := make([]attachmentDocument, 0, len(images))
	for _, img := range images {
		docs = append(docs, attachmentDocument{Data: img.Data, ContentType: img.ContentType})
	}
	return docs
}

func toDomainAttachments(docs []attachmentDocument) []domain.Attachment {
	if docs == nil {
		return nil
	}
	images := make([]domain.Attachment, 0, len(docs))
	for _, doc := range docs {
		images = append(images, domain.Attachment{Data: doc.Data, ContentType: doc.ContentType})
	}
	return images
}

// fromDomainListing converts a domain Listing into its document form.
// An empty domain ID maps to NilObjectID so InsertOne lets the driver
// assign one; a non-empty ID must be valid ObjectID hex.
func fromDomainListing(l *domain.Listing) (*listingDocument, error) {
	docID := primitive.NilObjectID
	if l.ID != "" {
		var err error
		docID, err = primitive.ObjectIDFromHex(l.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, l.ID)
		}
	}
	return &listingDocument{
		ID:           docID,
		Title:        l.Title,
		Description:  l.Description,
		Location:     l.Location,
		Price:        l.Price,
		OwnerEmail:   l.OwnerEmail,
		Bedrooms:     l.Bedrooms,
		Bathrooms:    l.Bathrooms,
		EntranceType: l.EntranceType,
		Gas:          l.Gas,
		Internet:     l.Internet,
		Water:        l.Water,
		Electricity:  l.Electricity,
		Garage:       l.Garage,
		Kitchen:      l.Kitchen,
		Images:       fromDomainAttachments(l.Images),
	}, nil
}

func toDomainListing(d *listingDocument) *domain.Listing {
	return &domain.Listing{
		ID: d.ID.Hex(),
		ListingFields: domain.ListingFields{
			Title:        d.Title,
			Description:  d.Description,
			Location:     d.Location,
			Price:        d.Price,
			OwnerEmail:   d.OwnerEmail,
			Bedrooms:     d.Bedrooms,
			Bathrooms:    d.Bathrooms,
			EntranceType: d.EntranceType,
			Gas:          d.Gas,
			Internet:     d.Internet,
			Water:        d.Water,
			Electricity:  d.Electricity,
			Garage:       d.Garage,
			Kitchen:      d.Kitchen,
		},
		Images: toDomainAttachments(d.Images),
	}
}

func toDomainListings(docs []*listingDocument) []*domain.Listing {
	listings := make([]*domain.Listing, 0, len(docs))
	for _, doc := range docs {
		listings = append(listings, toDomainListing(doc))
	}
	return listings
}
