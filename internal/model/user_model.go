package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	ChannelName string         `gorm:"type:varchar(100);not null" json:"channel_name"`
	Email       string         `gorm:"uniqueIndex;not null" json:"email"`
	Phone       string         `gorm:"type:varchar(30)" json:"phone"`
	Password    string         `gorm:"not null" json:"-"`
	LogoURL     string         `gorm:"type:varchar(500)" json:"logo_url"`
	LogoKey     string         `gorm:"type:varchar(500)" json:"logo_key"`
	Subscribers int64          `gorm:"default:0" json:"subscribers"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
