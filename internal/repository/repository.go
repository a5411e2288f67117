package repository

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	"ultraai/internal/db"
	"ultraai/internal/db/models"
)

var (
	ErrUserNotFound = errors.New("usuário não encontrado")
	ErrEmailTaken   = errors.New("email já cadastrado")
	// ErrWebhookNotFound cobre tanto registro inexistente quanto registro de
	// outro dono, para não revelar a existência de webhooks de terceiros.
	ErrWebhookNotFound = errors.New("webhook não encontrado")
)

type Repositories struct {
	User    UserRepositoryInterface
	Webhook WebhookRepositoryInterface
	db      *db.DB
}

func NewRepositories(database *db.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(database.DB),
		Webhook: NewWebhookRepository(database.DB),
		db:      database,
	}
}

func (r *Repositories) GetDB() *bun.DB {
	return r.db.DB
}

func (r *Repositories) Migrate(ctx context.Context) error {
	migrator := r.db.NewMigrator(r.db.DB)

	return migrator.AutoMigrate(ctx)
}

func (r *Repositories) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error)
	Count(ctx context.Context) (int, error)
	UpdateAvatarURL(ctx context.Context, id string, avatarURL string) error
}

type WebhookRepositoryInterface interface {
	Create(ctx context.Context, webhook *models.Webhook) error
	GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Webhook, error)
	GetByIDForOwner(ctx context.Context, id, ownerID string) (*models.Webhook, error)
	UpdateForOwner(ctx context.Context, id, ownerID string, patch *WebhookPatch) (*models.Webhook, error)
	DeleteForOwner(ctx context.Context, id, ownerID string) error
}
