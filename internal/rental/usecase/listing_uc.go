package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/domain"
)

// FileUpload is a fully buffered uploaded file plus its declared MIME
// type, as extracted from a multipart form by the transport layer.
type FileUpload struct {
	Content  []byte
	MimeType string
}

// ListingCache is the optional read-through cache in front of
// single-listing lookups. A nil cache disables caching.
type ListingCache interface {
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	SetListing(ctx context.Context, listing *domain.Listing) error
	DeleteListing(ctx context.Context, id string) error
}

// ListingUsecase orchestrates listing CRUD: it encodes uploads into
// attachment records, delegates to the repository and keeps the cache
// coherent. Cache failures are logged and never fail the request.
type ListingUsecase struct {
	repo   domain.ListingRepository
	cache  ListingCache
	logger *zap.Logger
}

func NewListingUsecase(repo domain.ListingRepository, cache ListingCache, logger *zap.Logger) *ListingUsecase {
	return &ListingUsecase{repo: repo, cache: cache, logger: logger.Named("ListingUsecase")}
}

func encodeUploads(uploads []FileUpload) []domain.Attachment {
	if uploads == nil {
		return nil
	}
	images := make([]domain.Attachment, 0, len(uploads))
	for _, up := range uploads {
		images = append(images, domain.EncodeAttachment(up.Content, up.MimeType))
	}
	return images
}

// Create inserts a new listing combining the scalar fields and the
// uploaded files. The listing and its attachments are stored in one
// write; there is no state where the listing exists without its images.
func (uc *ListingUsecase) Create(ctx context.Context, fields domain.ListingFields, uploads []FileUpload) (*domain.Listing, error) {
	listing := &domain.Listing{ListingFields: fields, Images: encodeUploads(uploads)}
	id, err := uc.repo.Create(ctx, listing)
	if err != nil {
		uc.logger.Error("Failed to create listing", zap.Error(err))
		return nil, err
	}
	listing.ID = id
	if uc.cache != nil {
		if err := uc.cache.SetListing(ctx, listing); err != nil {
			uc.logger.Warn("Failed to cache created listing", zap.String("listingID", id), zap.Error(err))
		}
	}
	return listing, nil
}

func (uc *ListingUsecase) ListAll(ctx context.Context) ([]*domain.Listing, error) {
	listings, err := uc.repo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list listings", zap.Error(err))
		return nil, err
	}
	return listings, nil
}

func (uc *ListingUsecase) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetListing(ctx, id)
		if err != nil {
			uc.logger.Warn("Cache lookup failed", zap.String("listingID", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}
	listing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.SetListing(ctx, listing); err != nil {
			uc.logger.Warn("Failed to cache listing", zap.String("listingID", id), zap.Error(err))
		}
	}
	return listing, nil
}

// Update replaces the scalar fields of an existing listing. Images are
// only replaced when the request actually carried files.
func (uc *ListingUsecase) Update(ctx context.Context, id string, fields domain.ListingFields, uploads []FileUpload) (*domain.Listing, error) {
	listing, err := uc.repo.Update(ctx, id, fields, encodeUploads(uploads))
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.SetListing(ctx, listing); err != nil {
			uc.logger.Warn("Failed to refresh cached listing", zap.String("listingID", id), zap.Error(err))
		}
	}
	return listing, nil
}

func (uc *ListingUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if uc.cache != nil {
		if err := uc.cache.DeleteListing(ctx, id); err != nil {
			uc.logger.Warn("Failed to evict cached listing", zap.String("listingID", id), zap.Error(err))
		}
	}
	return nil
}
