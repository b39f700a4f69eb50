package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/domain"
)

// PostUsecase exposes the free-form record store behind the /posts
// endpoints of the file-backed variant.
type PostUsecase struct {
	repo   domain.PostRepository
	logger *zap.Logger
}

func NewPostUsecase(repo domain.PostRepository, logger *zap.Logger) *PostUsecase {
	return &PostUsecase{repo: repo, logger: logger.Named("PostUsecase")}
}

func (uc *PostUsecase) Create(ctx context.Context, record map[string]any) (map[string]any, error) {
	stored, err := uc.repo.Append(ctx, record)
	if err != nil {
		uc.logger.Error("Failed to store post", zap.Error(err))
		return nil, err
	}
	return stored, nil
}

func (uc *PostUsecase) List(ctx context.Context) ([]map[string]any, error) {
	records, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load posts", zap.Error(err))
		return nil, err
	}
	return records, nil
}

func (uc *PostUsecase) Update(ctx context.Context, id string, fields map[string]any) (map[string]any, error) {
	return uc.repo.Update(ctx, id, fields)
}

func (uc *PostUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
