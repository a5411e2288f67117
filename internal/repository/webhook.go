package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"ultraai/internal/db/models"
)

// WebhookPatch enumera os únicos campos que uma atualização pode alterar.
// PasswordEncrypted nil significa "manter a senha armazenada"; Username nil
// significa "manter o usuário armazenado".
type WebhookPatch struct {
	Name              string
	URL               string
	Username          *string
	PasswordEncrypted *string
}

type WebhookRepository struct {
	db *bun.DB
}

func NewWebhookRepository(db *bun.DB) *WebhookRepository {
	return &WebhookRepository{db: db}
}

func (r *WebhookRepository) Create(ctx context.Context, webhook *models.Webhook) error {
	if webhook.ID == "" {
		webhook.ID = uuid.New().String()
	}

	now := time.Now()
	webhook.CreatedAt = now
	webhook.UpdatedAt = now

	_, err := r.db.NewInsert().Model(webhook).Exec(ctx)
	return err
}

func (r *WebhookRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Webhook, error) {
	var webhooks []*models.Webhook
	err := r.db.NewSelect().
		Model(&webhooks).
		Where("? = ?", bun.Ident("ownerId"), ownerID).
		Order("createdAt DESC").
		Order("id ASC").
		Scan(ctx)
	return webhooks, err
}

func (r *WebhookRepository) GetByIDForOwner(ctx context.Context, id, ownerID string) (*models.Webhook, error) {
	webhook := &models.Webhook{}
	err := r.db.NewSelect().
		Model(webhook).
		Where("id = ?", id).
		Where("? = ?", bun.Ident("ownerId"), ownerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWebhookNotFound
		}
		return nil, err
	}
	return webhook, nil
}

func (r *WebhookRepository) UpdateForOwner(ctx context.Context, id, ownerID string, patch *WebhookPatch) (*models.Webhook, error) {
	query := r.db.NewUpdate().
		Model((*models.Webhook)(nil)).
		Set("name = ?", patch.Name).
		Set("url = ?", patch.URL).
		Set("? = ?", bun.Ident("updatedAt"), time.Now()).
		Where("id = ?", id).
		Where("? = ?", bun.Ident("ownerId"), ownerID)

	if patch.Username != nil {
		query = query.Set("? = ?", bun.Ident("authUsername"), *patch.Username)
	}
	if patch.PasswordEncrypted != nil {
		query = query.Set("? = ?", bun.Ident("authPasswordEncrypted"), *patch.PasswordEncrypted)
	}

	result, err := query.Exec(ctx)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rowsAffected == 0 {
		return nil, ErrWebhookNotFound
	}

	return r.GetByIDForOwner(ctx, id, ownerID)
}

func (r *WebhookRepository) DeleteForOwner(ctx context.Context, id, ownerID string) error {
	result, err := r.db.NewDelete().
		Model((*models.Webhook)(nil)).
		Where("id = ?", id).
		Where("? = ?", bun.Ident("ownerId"), ownerID).
		Exec(ctx)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrWebhookNotFound
	}

	return nil
}
