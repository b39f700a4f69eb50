package jsonfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/rental/domain"
)

func TestAccountRepoCreateThenFind(t *testing.T) {
	repo := NewAccountRepository(t.TempDir(), zap.NewNop())
	ctx := context.Background()

	id, err := repo.Create(ctx, &domain.Account{
		Email:    "a@x.com",
		Password: "secret",
		Rest:     map[string]any{"name": "A", "phone": "123"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	found, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, "a@x.com", found.Email)
	assert.Equal(t, "secret", found.Password)
	assert.Equal(t, map[string]any{"name": "A", "phone": "123"}, found.Rest)
}

func TestAccountRepoFindByEmailNotFound(t *testing.T) {
	repo := NewAccountRepository(t.TempDir(), zap.NewNop())

	_, err := repo.FindByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

// Duplicate emails are permitted; the lookup returns the earliest
// insert. This matches the legacy backend, not good practice.
func TestAccountRepoDuplicateEmailsFirstMatchWins(t *testing.T) {
	repo := NewAccountRepository(t.TempDir(), zap.NewNop())
	ctx := context.Background()

	first, err := repo.Create(ctx, &domain.Account{Email: "dup@x.com", Password: "one"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &domain.Account{Email: "dup@x.com", Password: "two"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	found, err := repo.FindByEmail(ctx, "dup@x.com")
	require.NoError(t, err)
	assert.Equal(t, first, found.ID)
	assert.Equal(t, "one", found.Password)
}
