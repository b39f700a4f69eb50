package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/adapter/repository/jsonfile"
	"github.com/itxsomi270/back-end/internal/rental/domain"
	"github.com/itxsomi270/back-end/internal/rental/usecase"
)

func newListingUsecase(t *testing.T) *usecase.ListingUsecase {
	t.Helper()
	repo := jsonfile.NewListingRepository(t.TempDir(), zap.NewNop())
	return usecase.NewListingUsecase(repo, nil, zap.NewNop())
}

// The reference scenario: a listing with one png attachment must come
// back byte for byte under the id create returned.
func TestCreateListingWithAttachment(t *testing.T) {
	uc := newListingUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx,
		domain.ListingFields{Title: "Room A", Price: "100", OwnerEmail: "a@x.com"},
		[]usecase.FileUpload{{Content: []byte{1, 2, 3}, MimeType: "image/png"}},
	)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Room A", found.Title)
	require.Len(t, found.Images, 1)
	assert.Equal(t, []byte{1, 2, 3}, found.Images[0].Data)
	assert.Equal(t, "image/png", found.Images[0].ContentType)
}

func TestCreateListingUploadOrder(t *testing.T) {
	uc := newListingUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, domain.ListingFields{}, []usecase.FileUpload{
		{Content: []byte{1}, MimeType: "image/png"},
		{Content: []byte{2}, MimeType: "image/jpeg"},
		{Content: []byte{3}, MimeType: "image/gif"},
	})
	require.NoError(t, err)

	found, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, found.Images, 3)
	assert.Equal(t, []byte{1}, found.Images[0].Data)
	assert.Equal(t, []byte{2}, found.Images[1].Data)
	assert.Equal(t, []byte{3}, found.Images[2].Data)
}

func TestUpdateListingWithoutUploadsKeepsImages(t *testing.T) {
	uc := newListingUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx,
		domain.ListingFields{Title: "Old"},
		[]usecase.FileUpload{{Content: []byte{9}, MimeType: "image/png"}},
	)
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, domain.ListingFields{Title: "New"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	require.Len(t, updated.Images, 1)
	assert.Equal(t, []byte{9}, updated.Images[0].Data)
}

func TestDeleteListing(t *testing.T) {
	uc := newListingUsecase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, domain.ListingFields{Title: "Gone"}, nil)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
