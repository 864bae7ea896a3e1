// internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`

	UserUsername string `json:"user_username" gorm:"column:user_username;type:varchar(50);not null;uniqueIndex:uq_users_username"`

	// bcrypt hash, never the raw password
	UserPassword string `json:"-" gorm:"column:user_password;type:varchar(100);not null"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime"`
	UserUpdatedAt *time.Time     `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
