package persistent

import (
	"errors"

	"cliptube/internal/entity"
	"cliptube/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	Update(user *entity.User) error
	AddSubscription(subscriberID, channelID string) (bool, error)
	IncrementSubscribers(channelID string) error
	GetSubscribedChannelIDs(userID string) ([]string, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	userModel := ToUserModel(user)
	return r.db.Save(userModel).Error
}

// AddSubscription inserts the edge if it does not exist yet. Returns whether
// a new edge was created, so the caller only bumps the subscriber counter on
// first-time subscriptions.
func (r *userRepository) AddSubscription(subscriberID, channelID string) (bool, error) {
	subscriptionModel := &model.SubscriptionModel{
		ID:           uuid.New().String(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}

	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subscriber_id"}, {Name: "channel_id"}},
		DoNothing: true,
	}).Create(subscriptionModel)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *userRepository) IncrementSubscribers(channelID string) error {
	return r.db.Model(&model.UserModel{}).
		Where("id = ?", channelID).
		UpdateColumn("subscribers", gorm.Expr("subscribers + ?", 1)).Error
}

func (r *userRepository) GetSubscribedChannelIDs(userID string) ([]string, error) {
	var channelIDs []string
	err := r.db.Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", userID).
		Order("created_at ASC").
		Pluck("channel_id", &channelIDs).Error
	if err != nil {
		return nil, err
	}
	return channelIDs, nil
}
