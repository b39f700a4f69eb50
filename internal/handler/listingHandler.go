package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/domain"
	"github.com/itxsomi270/back-end/internal/rental/usecase"
)

const maxUploadMemory = 32 << 20

type ListingHandler struct {
	listings *usecase.ListingUsecase
	logger   *zap.Logger
}

func NewListingHandler(listings *usecase.ListingUsecase, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		listings: listings,
		logger:   logger.Named("ListingHTTPHandler"),
	}
}

func listingFieldsFromForm(r *http.Request) domain.ListingFields {
	return domain.ListingFields{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Location:     r.FormValue("location"),
		Price:        r.FormValue("price"),
		OwnerEmail:   r.FormValue("ownerEmail"),
		Bedrooms:     r.FormValue("bedrooms"),
		Bathrooms:    r.FormValue("bathrooms"),
		EntranceType: r.FormValue("entranceType"),
		Gas:          r.FormValue("gas"),
		Internet:     r.FormValue("internet"),
		Water:        r.FormValue("water"),
		Electricity:  r.FormValue("electricity"),
		Garage:       r.FormValue("garage"),
		Kitchen:      r.FormValue("kitchen"),
	}
}

func readUploads(files []*multipart.FileHeader) ([]usecase.FileUpload, error) {
	if len(files) == 0 {
		return nil, nil
	}
	uploads := make([]usecase.FileUpload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %q: %w", fh.Filename, err)
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read upload %q: %w", fh.Filename, err)
		}
		uploads = append(uploads, usecase.FileUpload{
			Content:  content,
			MimeType: fh.Header.Get("Content-Type"),
		})
	}
	return uploads, nil
}

// RentYourSpace creates a listing from a multipart form with up to five
// image files under the "images" field. The listing and its images go
// into the store in a single insert.
func (h *ListingHandler) RentYourSpace(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.logger.Error("Failed to parse multipart form for RentYourSpace", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid multipart form", Kind: "bad_request"})
		return
	}

	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["images"]
	}
	if len(files) > domain.MaxListingImages {
		h.logger.Warn("Too many images for RentYourSpace", zap.Int("count", len(files)))
		writeJSON(w, http.StatusBadRequest, errorBody{
			Message: fmt.Sprintf("At most %d images are allowed", domain.MaxListingImages),
			Kind:    "too_many_images",
		})
		return
	}

	uploads, err := readUploads(files)
	if err != nil {
		h.logger.Error("Failed to read uploads for RentYourSpace", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Failed to read uploaded files", Kind: "upload_failure"})
		return
	}

	listing, err := h.listings.Create(r.Context(), listingFieldsFromForm(r), uploads)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Rental space data received and stored successfully!",
		"rentalId": listing.ID,
	})
}

func (h *ListingHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listings.ListAll(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if listings == nil {
		listings = []*domain.Listing{}
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *ListingHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	listing, err := h.listings.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}
