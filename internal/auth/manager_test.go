package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ultraai/internal/db/models"
	"ultraai/internal/repository"
)

// fakeUserRepo implementa repository.UserRepositoryInterface em memória.
type fakeUserRepo struct {
	users map[string]*models.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.APIKey == "" {
		user.APIKey = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	for _, user := range f.users {
		if user.APIKey == apiKey {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) Count(ctx context.Context) (int, error) {
	return len(f.users), nil
}

func (f *fakeUserRepo) UpdateAvatarURL(ctx context.Context, id string, avatarURL string) error {
	user, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.AvatarURL = avatarURL
	return nil
}

func TestSignUpFirstUserIsAdmin(t *testing.T) {
	manager := NewManager(newFakeUserRepo())
	ctx := context.Background()

	primeiro, err := manager.SignUp(ctx, "primeiro@example.com", "senha123", "Primeiro")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, primeiro.Role)

	segundo, err := manager.SignUp(ctx, "segundo@example.com", "senha123", "Segundo")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, segundo.Role)
}

func TestSignUpHashesPassword(t *testing.T) {
	manager := NewManager(newFakeUserRepo())

	user, err := manager.SignUp(context.Background(), "hash@example.com", "senha123", "Hash")
	require.NoError(t, err)

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "senha123", user.PasswordHash)
	assert.NotEmpty(t, user.APIKey)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	manager := NewManager(newFakeUserRepo())
	ctx := context.Background()

	_, err := manager.SignUp(ctx, "dup@example.com", "senha123", "Um")
	require.NoError(t, err)

	_, err = manager.SignUp(ctx, "dup@example.com", "outra456", "Dois")
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestSignIn(t *testing.T) {
	manager := NewManager(newFakeUserRepo())
	ctx := context.Background()

	created, err := manager.SignUp(ctx, "login@example.com", "senha123", "Login")
	require.NoError(t, err)

	user, err := manager.SignIn(ctx, "login@example.com", "senha123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestSignInWrongPassword(t *testing.T) {
	manager := NewManager(newFakeUserRepo())
	ctx := context.Background()

	_, err := manager.SignUp(ctx, "login@example.com", "senha123", "Login")
	require.NoError(t, err)

	_, err = manager.SignIn(ctx, "login@example.com", "senha-errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInUnknownEmail(t *testing.T) {
	manager := NewManager(newFakeUserRepo())

	_, err := manager.SignIn(context.Background(), "ninguem@example.com", "senha123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateAPIKey(t *testing.T) {
	repo := newFakeUserRepo()
	manager := NewManager(repo)
	ctx := context.Background()

	created, err := manager.SignUp(ctx, "api@example.com", "senha123", "API")
	require.NoError(t, err)

	user, err := manager.ValidateAPIKey(ctx, created.APIKey)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = manager.ValidateAPIKey(ctx, "chave-invalida")
	assert.ErrorIs(t, err, ErrInvalidAPIKey)

	_, err = manager.ValidateAPIKey(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestValidateAPIKeyUsesCache(t *testing.T) {
	repo := newFakeUserRepo()
	manager := NewManager(repo)
	ctx := context.Background()

	created, err := manager.SignUp(ctx, "cache@example.com", "senha123", "Cache")
	require.NoError(t, err)

	// Primeira validação popula o cache
	_, err = manager.ValidateAPIKey(ctx, created.APIKey)
	require.NoError(t, err)

	// Mesmo sem o usuário no banco, o cache ainda resolve a chave
	delete(repo.users, created.ID)

	user, err := manager.ValidateAPIKey(ctx, created.APIKey)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	// Invalidar o cache força a consulta ao banco, que agora falha
	manager.InvalidateCache(created.APIKey)

	_, err = manager.ValidateAPIKey(ctx, created.APIKey)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestRefreshCache(t *testing.T) {
	repo := newFakeUserRepo()
	manager := NewManager(repo)
	ctx := context.Background()

	created, err := manager.SignUp(ctx, "refresh@example.com", "senha123", "Refresh")
	require.NoError(t, err)

	_, err = manager.ValidateAPIKey(ctx, created.APIKey)
	require.NoError(t, err)

	repo.users[created.ID].AvatarURL = "https://cdn.example.com/novo.png"
	require.NoError(t, manager.RefreshCache(ctx, created.APIKey))

	user, err := manager.ValidateAPIKey(ctx, created.APIKey)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/novo.png", user.AvatarURL)
}

func TestCacheManager(t *testing.T) {
	cm := NewCacheManager()
	user := &models.User{ID: "u1", Email: "x@example.com"}

	_, found := cm.GetUser("chave")
	assert.False(t, found)

	cm.SetUser("chave", user)
	cached, found := cm.GetUser("chave")
	require.True(t, found)
	assert.Equal(t, "u1", cached.ID)

	cm.DeleteUser("chave")
	_, found = cm.GetUser("chave")
	assert.False(t, found)
}
