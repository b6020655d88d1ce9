package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cliptube/internal/entity"
	"cliptube/internal/repo/persistent"
	"cliptube/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type VideoUseCase interface {
	Upload(userID, title, description, category, tags string, videoFile, thumbnailFile *multipart.FileHeader) (*entity.Video, error)
	Update(videoID, userID string, title, description, category, tags *string, thumbnail *multipart.FileHeader) (*entity.Video, error)
	Delete(videoID, userID string) error
	GetByID(videoID, viewerID string) (*entity.Video, error)
	ListAll() ([]*entity.Video, error)
	ListByUser(userID string) ([]*entity.Video, error)
	ListByCategory(category string) ([]*entity.Video, error)
	ListByTag(tag string) ([]*entity.Video, error)
	React(userID, videoID string, reaction entity.ReactionType) error
}

type videoUseCase struct {
	videoRepo   persistent.VideoRepository
	mediaStore  MediaStore
	redisClient *redis.Client
	publisher   TaskPublisher
	logger      *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	mediaStore MediaStore,
	redisClient *redis.Client,
	publisher TaskPublisher,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:   videoRepo,
		mediaStore:  mediaStore,
		redisClient: redisClient,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *videoUseCase) Upload(userID, title, description, category, tags string, videoFile, thumbnailFile *multipart.FileHeader) (*entity.Video, error) {
	videoURL, videoKey, err := uc.uploadMedia(userID, "videos", videoFile, "video/mp4")
	if err != nil {
		return nil, err
	}

	thumbnailURL, thumbnailKey, err := uc.uploadMedia(userID, "thumbnails", thumbnailFile, "image/jpeg")
	if err != nil {
		return nil, err
	}

	video := &entity.Video{
		UserID:       userID,
		Title:        title,
		Description:  description,
		VideoURL:     videoURL,
		VideoKey:     videoKey,
		ThumbnailURL: thumbnailURL,
		ThumbnailKey: thumbnailKey,
		Category:     category,
		Tags:         splitTags(tags),
	}

	if err := uc.videoRepo.Create(video); err != nil {
		uc.logger.Error("Failed to create video: %v", err)
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	if uc.publisher != nil {
		go func() {
			task := map[string]interface{}{
				"type":       "new_video",
				"video_id":   video.ID,
				"creator_id": video.UserID,
				"category":   video.Category,
				"priority":   5,
			}
			if err := uc.publisher.PublishNotificationTask(task); err != nil {
				uc.logger.Error("[NOTIFICATION QUEUE] Failed to publish new video task: %v", err)
			}
		}()
	}

	return video, nil
}

// Update merges provided fields over the stored record; nil fields keep
// their value. A new thumbnail releases the replaced asset first.
func (uc *videoUseCase) Update(videoID, userID string, title, description, category, tags *string, thumbnail *multipart.FileHeader) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, err
	}

	if video.UserID != userID {
		return nil, entity.ErrForbidden
	}

	if thumbnail != nil {
		if video.ThumbnailKey != "" {
			if err := uc.mediaStore.DeleteFile(video.ThumbnailKey); err != nil {
				return nil, fmt.Errorf("failed to delete old thumbnail: %w", err)
			}
		}

		thumbnailURL, thumbnailKey, err := uc.uploadMedia(userID, "thumbnails", thumbnail, "image/jpeg")
		if err != nil {
			return nil, err
		}
		video.ThumbnailURL = thumbnailURL
		video.ThumbnailKey = thumbnailKey
	}

	if title != nil {
		video.Title = *title
	}
	if description != nil {
		video.Description = *description
	}
	if category != nil {
		video.Category = *category
	}
	if tags != nil {
		video.Tags = splitTags(*tags)
	}

	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to update video: %v", err)
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	return video, nil
}

// Delete removes the record and releases both media assets. The ownership
// check runs before anything external is touched.
func (uc *videoUseCase) Delete(videoID, userID string) error {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return err
	}

	if video.UserID != userID {
		return entity.ErrForbidden
	}

	if err := uc.mediaStore.DeleteFile(video.VideoKey); err != nil {
		return fmt.Errorf("failed to delete video asset: %w", err)
	}
	if video.ThumbnailKey != "" {
		if err := uc.mediaStore.DeleteFile(video.ThumbnailKey); err != nil {
			return fmt.Errorf("failed to delete thumbnail asset: %w", err)
		}
	}

	if err := uc.videoRepo.Delete(videoID); err != nil {
		uc.logger.Error("Failed to delete video: %v", err)
		return fmt.Errorf("failed to delete video: %w", err)
	}

	uc.invalidateCounts(videoID)
	return nil
}

func (uc *videoUseCase) GetByID(videoID, viewerID string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return nil, err
	}

	firstView, err := uc.videoRepo.AddView(viewerID, videoID)
	if err != nil {
		uc.logger.Error("Failed to record view: %v", err)
		return nil, fmt.Errorf("failed to record view: %w", err)
	}
	if firstView && uc.redisClient != nil {
		// Only bump an already-warm counter. A cold key must stay absent so
		// cachedCount seeds it from the store, which already includes the
		// view recorded above, with an expiry.
		ctx := context.Background()
		if exists, err := uc.redisClient.Exists(ctx, viewCountKey(videoID)).Result(); err == nil && exists > 0 {
			uc.redisClient.Incr(ctx, viewCountKey(videoID))
		}
	}

	uc.fillCounts(video)
	return video, nil
}

func (uc *videoUseCase) ListAll() ([]*entity.Video, error) {
	return uc.videoRepo.List()
}

func (uc *videoUseCase) ListByUser(userID string) ([]*entity.Video, error) {
	return uc.videoRepo.GetByUserID(userID)
}

func (uc *videoUseCase) ListByCategory(category string) ([]*entity.Video, error) {
	return uc.videoRepo.GetByCategory(category)
}

func (uc *videoUseCase) ListByTag(tag string) ([]*entity.Video, error) {
	return uc.videoRepo.GetByTag(tag)
}

func (uc *videoUseCase) React(userID, videoID string, reaction entity.ReactionType) error {
	video, err := uc.videoRepo.GetByID(videoID)
	if err != nil {
		return err
	}

	if err := uc.videoRepo.SetReaction(userID, videoID, reaction); err != nil {
		uc.logger.Error("Failed to set reaction: %v", err)
		return fmt.Errorf("failed to set reaction: %w", err)
	}

	// The upsert may have flipped an existing reaction, so both cached
	// counters are stale.
	uc.invalidateCounts(videoID)

	if reaction == entity.ReactionLike && video.UserID != userID && uc.publisher != nil {
		go func() {
			task := map[string]interface{}{
				"type":     "like",
				"user_id":  video.UserID,
				"liker_id": userID,
				"video_id": videoID,
				"priority": 3,
			}
			if err := uc.publisher.PublishNotificationTask(task); err != nil {
				uc.logger.Error("[NOTIFICATION QUEUE] Failed to publish like task: %v", err)
			}
		}()
	}

	return nil
}

func (uc *videoUseCase) uploadMedia(userID, folder string, file *multipart.FileHeader, defaultContentType string) (string, string, error) {
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	key := fmt.Sprintf("%s/%s/%s%s", folder, userID, uuid.New().String(), filepath.Ext(file.Filename))
	url, err := uc.mediaStore.UploadFile(key, src, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload file to S3: %v", err)
		return "", "", fmt.Errorf("failed to upload file: %w", err)
	}

	return url, key, nil
}

func (uc *videoUseCase) fillCounts(video *entity.Video) {
	video.Likes = uc.cachedCount(likeCountKey(video.ID), func() (int64, error) {
		return uc.videoRepo.CountReactions(video.ID, entity.ReactionLike)
	})
	video.Dislikes = uc.cachedCount(dislikeCountKey(video.ID), func() (int64, error) {
		return uc.videoRepo.CountReactions(video.ID, entity.ReactionDislike)
	})
	video.Views = uc.cachedCount(viewCountKey(video.ID), func() (int64, error) {
		return uc.videoRepo.CountViews(video.ID)
	})
}

// cachedCount reads through the redis counter, falling back to the store
// and repopulating the cache. Without redis it counts directly.
func (uc *videoUseCase) cachedCount(key string, load func() (int64, error)) int64 {
	ctx := context.Background()

	if uc.redisClient != nil {
		if countStr, err := uc.redisClient.Get(ctx, key).Result(); err == nil {
			if count, parseErr := strconv.ParseInt(countStr, 10, 64); parseErr == nil {
				return count
			}
			// A corrupt cached value is a miss: reload and overwrite it.
		}
	}

	count, err := load()
	if err != nil {
		uc.logger.Error("Failed to load count for %s: %v", key, err)
		return 0
	}

	if uc.redisClient != nil {
		uc.redisClient.Set(ctx, key, count, 24*time.Hour)
	}

	return count
}

func (uc *videoUseCase) invalidateCounts(videoID string) {
	if uc.redisClient == nil {
		return
	}
	uc.redisClient.Del(context.Background(),
		likeCountKey(videoID),
		dislikeCountKey(videoID),
		viewCountKey(videoID),
	)
}

func likeCountKey(videoID string) string {
	return fmt.Sprintf("video:likes:%s", videoID)
}

func dislikeCountKey(videoID string) string {
	return fmt.Sprintf("video:dislikes:%s", videoID)
}

func viewCountKey(videoID string) string {
	return fmt.Sprintf("video:views:%s", videoID)
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}

	parts := strings.Split(tags, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
