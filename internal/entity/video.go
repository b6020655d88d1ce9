package entity

import "time"

type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
)

// Video ownership (UserID) is set on upload and never changes. VideoKey and
// ThumbnailKey are the storage asset ids released when the video is deleted.
type Video struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"videoUrl"`
	VideoKey     string    `json:"videoId"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	ThumbnailKey string    `json:"thumbnailId"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	Likes        int64     `json:"likes"`
	Dislikes     int64     `json:"dislikes"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
