package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReactionModel holds at most one row per (user, video). Liking a video the
// user already disliked flips Type in place, which is what keeps the liked
// and disliked sets mutually exclusive.
type ReactionModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_pair" json:"user_id"`
	VideoID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_pair;index" json:"video_id"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ReactionModel) TableName() string {
	return "reactions"
}

func (r *ReactionModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// ViewModel records that a user has watched a video. The unique pair index
// makes repeat views no-ops.
type ViewModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_views_pair" json:"user_id"`
	VideoID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_views_pair;index" json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ViewModel) TableName() string {
	return "views"
}

func (v *ViewModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
