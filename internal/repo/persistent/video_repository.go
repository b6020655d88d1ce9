package persistent

import (
	"errors"
	"time"

	"cliptube/internal/entity"
	"cliptube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	GetByUserID(userID string) ([]*entity.Video, error)
	List() ([]*entity.Video, error)
	GetByCategory(category string) ([]*entity.Video, error)
	GetByTag(tag string) ([]*entity.Video, error)
	Update(video *entity.Video) error
	Delete(id string) error
	AddView(userID, videoID string) (bool, error)
	SetReaction(userID, videoID string, reaction entity.ReactionType) error
	CountReactions(videoID string, reaction entity.ReactionType) (int64, error)
	CountViews(videoID string) (int64, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if videoModel.ID == "" {
		videoModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		tags := videoModel.Tags
		videoModel.Tags = nil

		if err := tx.Create(videoModel).Error; err != nil {
			return err
		}

		for i := range tags {
			tags[i].VideoID = videoModel.ID
			if tags[i].ID == "" {
				tags[i].ID = uuid.New().String()
			}
			if err := tx.Create(&tags[i]).Error; err != nil {
				return err
			}
		}
		videoModel.Tags = tags

		*video = *ToVideoEntity(videoModel)
		return nil
	})
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Preload("Tags").Where("id = ?", id).First(&videoModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) GetByUserID(userID string) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.Preload("Tags").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}

func (r *videoRepository) List() ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.Preload("Tags").
		Order("created_at DESC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}

func (r *videoRepository) GetByCategory(category string) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.Preload("Tags").
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}

func (r *videoRepository) GetByTag(tag string) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.Preload("Tags").
		Joins("INNER JOIN video_tags ON video_tags.video_id = videos.id").
		Where("video_tags.tag = ?", tag).
		Order("videos.created_at DESC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}

// Update saves the video fields and replaces its tag set in one transaction.
// UserID is carried through untouched: ownership never changes.
func (r *videoRepository) Update(video *entity.Video) error {
	videoModel := ToVideoModel(video)

	return r.db.Transaction(func(tx *gorm.DB) error {
		tags := videoModel.Tags
		videoModel.Tags = nil

		if err := tx.Save(videoModel).Error; err != nil {
			return err
		}

		if err := tx.Where("video_id = ?", videoModel.ID).Delete(&model.VideoTagModel{}).Error; err != nil {
			return err
		}

		for i := range tags {
			tags[i].VideoID = videoModel.ID
			if tags[i].ID == "" {
				tags[i].ID = uuid.New().String()
			}
			if err := tx.Create(&tags[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *videoRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("video_id = ?", id).Delete(&model.VideoTagModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.ReactionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.ViewModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.VideoModel{}, "id = ?", id).Error
	})
}

// AddView records the viewer once; repeat views hit the unique pair index
// and are dropped. Returns whether this was a first view.
func (r *videoRepository) AddView(userID, videoID string) (bool, error) {
	viewModel := &model.ViewModel{
		ID:      uuid.New().String(),
		UserID:  userID,
		VideoID: videoID,
	}

	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoNothing: true,
	}).Create(viewModel)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// SetReaction upserts the single reaction row for (user, video). A like
// overwrites a prior dislike and vice versa, so membership in the two sets
// stays mutually exclusive without a second statement.
func (r *videoRepository) SetReaction(userID, videoID string, reaction entity.ReactionType) error {
	reactionModel := &model.ReactionModel{
		ID:      uuid.New().String(),
		UserID:  userID,
		VideoID: videoID,
		Type:    string(reaction),
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"type":       string(reaction),
			"updated_at": time.Now(),
		}),
	}).Create(reactionModel).Error
}

func (r *videoRepository) CountReactions(videoID string, reaction entity.ReactionType) (int64, error) {
	var count int64
	err := r.db.Model(&model.ReactionModel{}).
		Where("video_id = ? AND type = ?", videoID, string(reaction)).
		Count(&count).Error
	return count, err
}

func (r *videoRepository) CountViews(videoID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.ViewModel{}).
		Where("video_id = ?", videoID).
		Count(&count).Error
	return count, err
}

func toVideoEntities(videoModels []model.VideoModel) []*entity.Video {
	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos
}
