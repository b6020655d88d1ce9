package persistent

import (
	"cliptube/internal/entity"
	"cliptube/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		ChannelName: m.ChannelName,
		Email:       m.Email,
		Phone:       m.Phone,
		Password:    m.Password,
		LogoURL:     m.LogoURL,
		LogoKey:     m.LogoKey,
		Subscribers: m.Subscribers,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:          e.ID,
		ChannelName: e.ChannelName,
		Email:       e.Email,
		Phone:       e.Phone,
		Password:    e.Password,
		LogoURL:     e.LogoURL,
		LogoKey:     e.LogoKey,
		Subscribers: e.Subscribers,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	video := &entity.Video{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		Description:  m.Description,
		VideoURL:     m.VideoURL,
		VideoKey:     m.VideoKey,
		ThumbnailURL: m.ThumbnailURL,
		ThumbnailKey: m.ThumbnailKey,
		Category:     m.Category,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	if len(m.Tags) > 0 {
		video.Tags = make([]string, len(m.Tags))
		for i, tag := range m.Tags {
			video.Tags[i] = tag.Tag
		}
	}

	return video
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	video := &model.VideoModel{
		ID:           e.ID,
		UserID:       e.UserID,
		Title:        e.Title,
		Description:  e.Description,
		VideoURL:     e.VideoURL,
		VideoKey:     e.VideoKey,
		ThumbnailURL: e.ThumbnailURL,
		ThumbnailKey: e.ThumbnailKey,
		Category:     e.Category,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}

	if len(e.Tags) > 0 {
		video.Tags = make([]model.VideoTagModel, len(e.Tags))
		for i, tag := range e.Tags {
			video.Tags[i] = model.VideoTagModel{VideoID: e.ID, Tag: tag}
		}
	}

	return video
}

func ToSubscriptionEntity(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}

	return &entity.Subscription{
		ID:           m.ID,
		SubscriberID: m.SubscriberID,
		ChannelID:    m.ChannelID,
		CreatedAt:    m.CreatedAt,
	}
}
