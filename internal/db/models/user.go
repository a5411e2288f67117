package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           string   `json:"id" bun:"id,pk,type:varchar(255)"`
	Email        string   `json:"email" bun:"email,notnull,unique,type:varchar(255)"`
	PasswordHash string   `json:"-" bun:"passwordHash,notnull,type:varchar(255)"`
	DisplayName  string   `json:"displayName" bun:"displayName,notnull,type:varchar(255)"`
	Role         UserRole `json:"role" bun:"role,notnull,default:'user',type:varchar(20)"`
	AvatarURL    string   `json:"avatarUrl,omitempty" bun:"avatarUrl,type:varchar(500)"`
	APIKey       string   `json:"-" bun:"apiKey,notnull,unique,type:varchar(255)"`

	CreatedAt time.Time `json:"createdAt" bun:"createdAt,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `json:"updatedAt" bun:"updatedAt,nullzero,notnull,default:current_timestamp"`

	Webhooks []*Webhook `json:"webhooks,omitempty" bun:"rel:has-many,join:id=ownerId"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		u.UpdatedAt = time.Now()
	}
	return nil
}
