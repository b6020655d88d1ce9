package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionModel is one edge of the subscriber graph. The unique pair
// index gives subscribe its add-to-set semantics.
type SubscriptionModel struct {
	ID           string         `gorm:"type:uuid;primary_key" json:"id"`
	SubscriberID string         `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair" json:"subscriber_id"`
	ChannelID    string         `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair" json:"channel_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
