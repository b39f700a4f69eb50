package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/domain"
)

const signupCollection = "signup"

// AccountRepository persists accounts in the "signup" collection.
// Emails are deliberately not indexed as unique: duplicate signups are
// allowed and lookups return the first match (see DESIGN.md).
type AccountRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewAccountRepository(db *mongo.Database, logger *zap.Logger) *AccountRepository {
	return &AccountRepository{
		collection: db.Collection(signupCollection),
		logger:     logger.Named("AccountRepository"),
	}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (string, error) {
	doc := fromDomainAccount(account)
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		r.logger.Error("Failed to insert account", zap.String("email", account.Email), zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	id := result.InsertedID.(primitive.ObjectID).Hex()
	r.logger.Info("Account created", zap.String("accountID", id), zap.String("email", account.Email))
	return id, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var doc accountDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug("Account not found by email", zap.String("email", email))
			return nil, domain.ErrAccountNotFound
		}
		r.logger.Error("Failed to fetch account by email", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return toDomainAccount(&doc), nil
}
