package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ultraai/internal/db/models"
)

func newTestUser(email string) *models.User {
	return &models.User{
		Email:        email,
		PasswordHash: "$2a$10$hash-de-teste",
		DisplayName:  "Usuário de Teste",
	}
}

func TestUserCreateAssignsDefaults(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("novo@example.com")
	require.NoError(t, repo.Create(ctx, user))

	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.APIKey)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("dup@example.com")))

	err := repo.Create(ctx, newTestUser("dup@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserCreateKeepsExplicitRole(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("admin@example.com")
	user.Role = models.RoleAdmin
	require.NoError(t, repo.Create(ctx, user))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, stored.Role)
	assert.True(t, stored.IsAdmin())
}

func TestUserGetByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("busca@example.com")
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.GetByEmail(ctx, "busca@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.GetByEmail(ctx, "ninguem@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserGetByAPIKey(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("apikey@example.com")
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.GetByAPIKey(ctx, user.APIKey)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.GetByAPIKey(ctx, "chave-inexistente")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserCount(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, repo.Create(ctx, newTestUser("um@example.com")))
	require.NoError(t, repo.Create(ctx, newTestUser("dois@example.com")))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestUserUpdateAvatarURL(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("avatar@example.com")
	require.NoError(t, repo.Create(ctx, user))

	avatarURL := "https://cdn.example.com/avatars/abc.png"
	require.NoError(t, repo.UpdateAvatarURL(ctx, user.ID, avatarURL))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, avatarURL, stored.AvatarURL)
}

func TestUserUpdateAvatarURLNotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	err := repo.UpdateAvatarURL(context.Background(), "id-inexistente", "https://x.png")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
