package entity

import "time"

// User is a channel owner. LogoKey is the storage asset id of the avatar,
// kept so a later profile update can destroy the replaced object.
type User struct {
	ID                 string    `json:"id"`
	ChannelName        string    `json:"channelName"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Password           string    `json:"-"`
	LogoURL            string    `json:"logoUrl"`
	LogoKey            string    `json:"logoId"`
	Subscribers        int64     `json:"subscribers"`
	SubscribedChannels []string  `json:"subscribedChannels,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Subscription struct {
	ID           string    `json:"id"`
	SubscriberID string    `json:"subscriber_id"`
	ChannelID    string    `json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
}
