package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Webhook é um assistente externo registrado pelo usuário: um endpoint
// HTTP(S) que recebe prompts do chat e devolve a resposta da IA.
type Webhook struct {
	bun.BaseModel `bun:"table:webhooks,alias:w"`

	ID      string `json:"id" bun:"id,pk,type:varchar(255)"`
	OwnerID string `json:"ownerId" bun:"ownerId,notnull,type:varchar(255)"`
	Name    string `json:"name" bun:"name,notnull,type:varchar(255)"`
	URL     string `json:"url" bun:"url,notnull,type:varchar(500)"`

	AuthUsername string `json:"authUsername,omitempty" bun:"authUsername,type:varchar(255)"`
	// Nunca contém a senha em texto claro; somente o valor gerado pelo codec.
	AuthPasswordEncrypted string `json:"-" bun:"authPasswordEncrypted,type:text"`

	CreatedAt time.Time `json:"createdAt" bun:"createdAt,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `json:"updatedAt" bun:"updatedAt,nullzero,notnull,default:current_timestamp"`

	Owner *User `json:"owner,omitempty" bun:"rel:belongs-to,join:ownerId=id"`
}

func (Webhook) TableName() string {
	return "webhooks"
}

func (w *Webhook) HasBasicAuth() bool {
	return w.AuthUsername != ""
}

func (w *Webhook) HasPassword() bool {
	return w.AuthPasswordEncrypted != ""
}

func (w *Webhook) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		w.UpdatedAt = time.Now()
	}
	return nil
}
