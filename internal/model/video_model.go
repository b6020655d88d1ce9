package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID           string          `gorm:"type:uuid;primary_key" json:"id"`
	UserID       string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Title        string          `gorm:"type:varchar(255);not null" json:"title"`
	Description  string          `gorm:"type:text" json:"description"`
	VideoURL     string          `gorm:"type:varchar(500);not null" json:"video_url"`
	VideoKey     string          `gorm:"type:varchar(500);not null" json:"video_key"`
	ThumbnailURL string          `gorm:"type:varchar(500)" json:"thumbnail_url"`
	ThumbnailKey string          `gorm:"type:varchar(500)" json:"thumbnail_key"`
	Category     string          `gorm:"type:varchar(100);index" json:"category"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
	Tags         []VideoTagModel `gorm:"foreignKey:VideoID" json:"tags,omitempty"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}

type VideoTagModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	VideoID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_video_tags_pair" json:"video_id"`
	Tag       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_video_tags_pair;index" json:"tag"`
	CreatedAt time.Time `json:"created_at"`
}

func (VideoTagModel) TableName() string {
	return "video_tags"
}

func (t *VideoTagModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
