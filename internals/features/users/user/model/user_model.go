package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserModel represents the users table. One row per registered member;
// CreatedAt doubles as the join date shown on the profile screen.
type UserModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName    string            `gorm:"size:100;not null" json:"user_name"`
	Email       string            `gorm:"size:255;unique;not null" json:"email"`
	Phone       string            `gorm:"size:30" json:"phone"`
	Password    string            `gorm:"not null" json:"-"`
	GoogleID    *string           `gorm:"size:255;unique" json:"google_id,omitempty"`
	Role        string            `gorm:"type:varchar(20);not null;default:'user'" json:"-"`
	AvatarURL   string            `gorm:"type:text" json:"avatar_url"`
	Preferences datatypes.JSONMap `gorm:"type:jsonb" json:"preferences"`
	IsActive    bool              `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

// DefaultPreferences are applied at signup and merged into on update.
func DefaultPreferences() datatypes.JSONMap {
	return datatypes.JSONMap{
		"notifications":   true,
		"prayer_reminder": true,
		"theme":           "light",
		"language":        "bn",
	}
}

// SetDefaultValues fills defaults before the row is persisted.
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "user"
	}
	if u.Preferences == nil {
		u.Preferences = DefaultPreferences()
	}
}
