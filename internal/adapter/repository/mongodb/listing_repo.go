package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/domain"
)

const rentSpaceCollection = "rent-your-space"

// ListingRepository persists listings in the "rent-your-space"
// collection, attachments embedded in the document. Single-document
// write atomicity is all this store relies on; a listing is never
// visible without its images.
type ListingRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewListingRepository(db *mongo.Database, logger *zap.Logger) *ListingRepository {
	return &ListingRepository{
		collection: db.Collection(rentSpaceCollection),
		logger:     logger.Named("ListingRepository"),
	}
}

func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) (string, error) {
	doc, err := fromDomainListing(listing)
	if err != nil {
		return "", err
	}
	doc.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.logger.Error("Failed to insert listing", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	r.logger.Info("Listing created", zap.String("listingID", doc.ID.Hex()), zap.Int("images", len(doc.Images)))
	return doc.ID.Hex(), nil
}

// FindAll returns every listing in store-native order. Unbounded by
// contract; no pagination is applied.
func (r *ListingRepository) FindAll(ctx context.Context) ([]*domain.Listing, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error("Failed to list listings", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	defer cursor.Close(ctx)

	var docs []*listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("Failed to decode listings", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return toDomainListings(docs), nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.logger.Warn("Malformed listing id", zap.String("listingID", id))
		return nil, domain.ErrInvalidID
	}
	var doc listingDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug("Listing not found", zap.String("listingID", id))
			return nil, domain.ErrListingNotFound
		}
		r.logger.Error("Failed to fetch listing", zap.String("listingID", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return toDomainListing(&doc), nil
}

// Update replaces the scalar fields of the listing at id in place.
// Empty fields overwrite (full replacement, not a merge); the images
// array is only touched when a non-nil replacement is supplied.
func (r *ListingRepository) Update(ctx context.Context, id string, fields domain.ListingFields, images []domain.Attachment) (*domain.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.logger.Warn("Malformed listing id", zap.String("listingID", id))
		return nil, domain.ErrInvalidID
	}

	set := bson.M{
		"title":        fields.Title,
		"description":  fields.Description,
		"location":     fields.Location,
		"price":        fields.Price,
		"ownerEmail":   fields.OwnerEmail,
		"bedrooms":     fields.Bedrooms,
		"bathrooms":    fields.Bathrooms,
		"entranceType": fields.EntranceType,
		"gas":          fields.Gas,
		"internet":     fields.Internet,
		"water":        fields.Water,
		"electricity":  fields.Electricity,
		"garage":       fields.Garage,
		"kitchen":      fields.Kitchen,
	}
	if images != nil {
		set["images"] = fromDomainAttachments(images)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc listingDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Warn("Listing not found for update", zap.String("listingID", id))
			return nil, domain.ErrListingNotFound
		}
		r.logger.Error("Failed to update listing", zap.String("listingID", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	r.logger.Info("Listing updated", zap.String("listingID", id))
	return toDomainListing(&doc), nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.logger.Warn("Malformed listing id", zap.String("listingID", id))
		return domain.ErrInvalidID
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error("Failed to delete listing", zap.String("listingID", id), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if result.DeletedCount == 0 {
		r.logger.Warn("Listing not found for delete", zap.String("listingID", id))
		return domain.ErrListingNotFound
	}
	r.logger.Info("Listing deleted", zap.String("listingID", id))
	return nil
}
