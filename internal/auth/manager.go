package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"ultraai/internal/db/models"
	"ultraai/internal/logger"
	"ultraai/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidAPIKey      = errors.New("API Key inválida")
)

type Manager struct {
	users        repository.UserRepositoryInterface
	cacheManager *CacheManager
	logger       logger.Logger
}

func NewManager(users repository.UserRepositoryInterface) *Manager {
	return &Manager{
		users:        users,
		cacheManager: NewCacheManager(),
		logger:       logger.NewForComponent("AuthManager"),
	}
}

// SignUp cria a conta e emite a API Key do usuário. O primeiro usuário
// cadastrado recebe o papel de admin.
func (m *Manager) SignUp(ctx context.Context, email, password, displayName string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := models.RoleUser
	count, err := m.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		role = models.RoleAdmin
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Role:         role,
	}

	if err := m.users.Create(ctx, user); err != nil {
		return nil, err
	}

	m.logger.Info("Conta criada", "userID", user.ID, "role", user.Role)
	return user, nil
}

func (m *Manager) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	user, err := m.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		m.logger.Warn("Senha incorreta", "email", email)
		return nil, ErrInvalidCredentials
	}

	m.logger.Info("Login bem-sucedido", "userID", user.ID)
	return user, nil
}

// ValidateAPIKey resolve a identidade do chamador a partir da API Key.
// É a única fonte de verdade para o ownerId usado nas operações de webhook.
func (m *Manager) ValidateAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	if user, found := m.cacheManager.GetUser(apiKey); found {
		m.logger.Debug("Usuário encontrado no cache", "userID", user.ID)
		return user, nil
	}

	user, err := m.users.GetByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidAPIKey
		}
		return nil, err
	}

	m.cacheManager.SetUser(apiKey, user)
	m.logger.Debug("Usuário autenticado via banco", "userID", user.ID)

	return user, nil
}

func (m *Manager) InvalidateCache(apiKey string) {
	m.cacheManager.DeleteUser(apiKey)
}

// RefreshCache recarrega o usuário no cache após mutações de perfil.
func (m *Manager) RefreshCache(ctx context.Context, apiKey string) error {
	user, err := m.users.GetByAPIKey(ctx, apiKey)
	if err != nil {
		return err
	}

	m.cacheManager.SetUser(apiKey, user)
	return nil
}
