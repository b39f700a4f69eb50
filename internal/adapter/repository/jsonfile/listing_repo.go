package jsonfile

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/domain"
)

const listingsFile = "listings.json"

// ListingRepository stores listings, attachments included, in a single
// JSON snapshot file. Attachment bytes end up base64-encoded inside the
// container, which keeps the whole record self-contained.
type ListingRepository struct {
	path   string
	logger *zap.Logger
}

func NewListingRepository(dataDir string, logger *zap.Logger) *ListingRepository {
	return &ListingRepository{
		path:   filepath.Join(dataDir, listingsFile),
		logger: logger.Named("ListingRepository"),
	}
}

func (r *ListingRepository) load() ([]*domain.Listing, error) {
	listings := []*domain.Listing{}
	if err := readSnapshot(r.path, &listings); err != nil {
		r.logger.Error("Failed to load listings", zap.Error(err))
		return nil, err
	}
	return listings, nil
}

func (r *ListingRepository) persist(listings []*domain.Listing) error {
	if err := writeSnapshot(r.path, listings); err != nil {
		r.logger.Error("Failed to persist listings", zap.Error(err))
		return err
	}
	return nil
}

func (r *ListingRepository) Create(_ context.Context, listing *domain.Listing) (string, error) {
	listings, err := r.load()
	if err != nil {
		return "", err
	}
	stored := *listing
	stored.ID = uuid.New().String()
	listings = append(listings, &stored)
	if err := r.persist(listings); err != nil {
		return "", err
	}
	r.logger.Info("Listing created", zap.String("listingID", stored.ID), zap.Int("images", len(stored.Images)))
	return stored.ID, nil
}

func (r *ListingRepository) FindAll(_ context.Context) ([]*domain.Listing, error) {
	return r.load()
}

func (r *ListingRepository) FindByID(_ context.Context, id string) (*domain.Listing, error) {
	if _, err := uuid.Parse(id); err != nil {
		r.logger.Warn("Malformed listing id", zap.String("listingID", id))
		return nil, domain.ErrInvalidID
	}
	listings, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, listing := range listings {
		if listing.ID == id {
			return listing, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

// Update replaces the scalar fields of the listing at id. Images stay
// as they are unless a non-nil replacement slice is given.
func (r *ListingRepository) Update(_ context.Context, id string, fields domain.ListingFields, images []domain.Attachment) (*domain.Listing, error) {
	if _, err := uuid.Parse(id); err != nil {
		r.logger.Warn("Malformed listing id", zap.String("listingID", id))
		return nil, domain.ErrInvalidID
	}
	listings, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, listing := range listings {
		if listing.ID != id {
			continue
		}
		listing.ListingFields = fields
		if images != nil {
			listing.Images = images
		}
		if err := r.persist(listings); err != nil {
			return nil, err
		}
		r.logger.Info("Listing updated", zap.String("listingID", id))
		return listing, nil
	}
	r.logger.Warn("Listing not found for update", zap.String("listingID", id))
	return nil, domain.ErrListingNotFound
}

func (r *ListingRepository) Delete(_ context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		r.logger.Warn("Malformed listing id", zap.String("listingID", id))
		return domain.ErrInvalidID
	}
	listings, err := r.load()
	if err != nil {
		return err
	}
	for i, listing := range listings {
		if listing.ID != id {
			continue
		}
		listings = append(listings[:i], listings[i+1:]...)
		if err := r.persist(listings); err != nil {
			return err
		}
		r.logger.Info("Listing deleted", zap.String("listingID", id))
		return nil
	}
	r.logger.Warn("Listing not found for delete", zap.String("listingID", id))
	return domain.ErrListingNotFound
}
