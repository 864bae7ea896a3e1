package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist holds session tokens revoked by logout until their
// natural expiry; the cleanup scheduler purges stale rows.
type TokenBlacklist struct {
	TokenBlacklistID uuid.UUID `json:"token_blacklist_id" gorm:"column:token_blacklist_id;type:uuid;default:gen_random_uuid();primaryKey"`

	Token     string    `json:"token" gorm:"column:token;type:text;not null;index:idx_token_blacklist_token"`
	ExpiredAt time.Time `json:"expired_at" gorm:"column:expired_at;type:timestamptz;not null"`

	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at;type:timestamptz;not null;autoCreateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"column:deleted_at;index"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }

func (t *TokenBlacklist) BeforeCreate(tx *gorm.DB) error {
	if t.TokenBlacklistID == uuid.Nil {
		t.TokenBlacklistID = uuid.New()
	}
	return nil
}
