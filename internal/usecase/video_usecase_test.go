package usecase

import (
	"testing"

	"cliptube/internal/entity"
	"cliptube/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVideoRepository is a mock implementation of persistent.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByUserID(userID string) ([]*entity.Video, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) List() ([]*entity.Video, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByCategory(category string) ([]*entity.Video, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByTag(tag string) ([]*entity.Video, error) {
	args := m.Called(tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVideoRepository) AddView(userID, videoID string) (bool, error) {
	args := m.Called(userID, videoID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVideoRepository) SetReaction(userID, videoID string, reaction entity.ReactionType) error {
	args := m.Called(userID, videoID, reaction)
	return args.Error(0)
}

func (m *MockVideoRepository) CountReactions(videoID string, reaction entity.ReactionType) (int64, error) {
	args := m.Called(videoID, reaction)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) CountViews(videoID string) (int64, error) {
	args := m.Called(videoID)
	return args.Get(0).(int64), args.Error(1)
}

func newTestVideoUseCase(videoRepo *MockVideoRepository, mediaStore *MockMediaStore) VideoUseCase {
	return NewVideoUseCase(videoRepo, mediaStore, nil, nil, logger.New())
}

func TestVideoUpload_Success(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	mediaStore := new(MockMediaStore)
	uc := newTestVideoUseCase(videoRepo, mediaStore)

	mediaStore.On("UploadFile", mock.Anything, mock.Anything, mock.Anything).Return("http://example.com/file", nil).Twice()
	videoRepo.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.Video).ID = "video-123"
	}).Return(nil)

	videoFile := testFileHeader(t, "video", "clip.mp4")
	thumbnailFile := testFileHeader(t, "thumbnail", "thumb.jpg")

	video, err := uc.Upload("user-123", "My Video", "A description", "tech", "go, backend,", videoFile, thumbnailFile)

	assert.NoError(t, err)
	assert.Equal(t, "user-123", video.UserID)
	assert.Equal(t, []string{"go", "backend"}, video.Tags)
	assert.NotEmpty(t, video.VideoURL)
	assert.NotEmpty(t, video.ThumbnailURL)

	videoRepo.AssertExpectations(t)
	mediaStore.AssertExpectations(t)
}

func TestVideoUpdate_MergesFields(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	mediaStore := new(MockMediaStore)
	uc := newTestVideoUseCase(videoRepo, mediaStore)

	videoRepo.On("GetByID", "video-123").Return(&entity.Video{
		ID:          "video-123",
		UserID:      "user-123",
		Title:       "Old Title",
		Description: "Old description",
		Category:    "tech",
		Tags:        []string{"go"},
	}, nil)
	videoRepo.On("Update", mock.Anything).Return(nil)

	title := "New Title"
	video, err := uc.Update("video-123", "user-123", &title, nil, nil, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, "New Title", video.Title)
	// Omitted fields keep their stored values
	assert.Equal(t, "Old description", video.Description)
	assert.Equal(t, "tech", video.Category)
	assert.Equal(t, []string{"go"}, video.Tags)

	videoRepo.AssertExpectations(t)
	mediaStore.AssertNotCalled(t, "UploadFile")
}

func TestVideoUpdate_NotOwner(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	mediaStore := new(MockMediaStore)
	uc := newTestVideoUseCase(videoRepo, mediaStore)

	videoRepo.On("GetByID", "video-123").Return(&entity.Video{
		ID:     "video-123",
		UserID: "owner-1",
	}, nil)

	title := "New Title"
	_, err := uc.Update("video-123", "intruder", &title, nil, nil, nil, nil)

	assert.ErrorIs(t, err, entity.ErrForbidden)
	videoRepo.AssertNotCalled(t, "Update")
}

func TestVideoDelete_Success(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	mediaStore := new(MockMediaStore)
	uc := newTestVideoUseCase(videoRepo, mediaStore)

	videoRepo.On("GetByID", "video-123").Return(&entity.Video{
		ID:           "video-123",
		UserID:       "user-123",
		VideoKey:     "videos/user-123/clip.mp4",
		ThumbnailKey: "thumbnails/user-123/thumb.jpg",
	}, nil)
	mediaStore.On("DeleteFile", "videos/user-123/clip.mp4").Return(nil)
	mediaStore.On("DeleteFile", "thumbnails/user-123/thumb.jpg").Return(nil)
	videoRepo.On("Delete", "video-123").Return(nil)

	err := uc.Delete("video-123", "user-123")

	assert.NoError(t, err)
	videoRepo.AssertExpectations(t)
	mediaStore.AssertExpectations(t)
}

func TestVideoDelete_NotOwner(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	mediaStore := new(MockMediaStore)
	uc := newTestVideoUseCase(videoRepo, mediaStore)

	videoRepo.On("GetByID", "video-123").Return(&entity.Video{
		ID:       "video-123",
		UserID:   "owner-1",
		VideoKey: "videos/owner-1/clip.mp4",
	}, nil)

	err := uc.Delete("video-123", "intruder")

	// Nothing is touched when the caller does not own the video.
	assert.ErrorIs(t, err, entity.ErrForbidden)
	mediaStore.AssertNotCalled(t, "DeleteFile")
	videoRepo.AssertNotCalled(t, "Delete")
}

func TestVideoDelete_NotFound(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	mediaStore := new(MockMediaStore)
	uc := newTestVideoUseCase(videoRepo, mediaStore)

	videoRepo.On("GetByID", "missing").Return(nil, entity.ErrNotFound)

	err := uc.Delete("missing", "user-123")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGetByID_RecordsView(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	mediaStore := new(MockMediaStore)
	uc := newTestVideoUseCase(videoRepo, mediaStore)

	videoRepo.On("GetByID", "video-123").Return(&entity.Video{
		ID:     "video-123",
		UserID: "owner-1",
		Title:  "My Video",
	}, nil)
	videoRepo.On("AddView", "viewer-1", "video-123").Return(true, nil)
	videoRepo.On("CountReactions", "video-123", entity.ReactionLike).Return(int64(3), nil)
	videoRepo.On("CountReactions", "video-123", entity.ReactionDislike).Return(int64(1), nil)
	videoRepo.On("CountViews", "video-123").Return(int64(7), nil)

	video, err := uc.GetByID("video-123", "viewer-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), video.Likes)
	assert.Equal(t, int64(1), video.Dislikes)
	assert.Equal(t, int64(7), video.Views)

	videoRepo.AssertExpectations(t)
}

func TestGetByID_RepeatView(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	mediaStore := new(MockMediaStore)
	uc := newTestVideoUseCase(videoRepo, mediaStore)

	videoRepo.On("GetByID", "video-123").Return(&entity.Video{
		ID:     "video-123",
		UserID: "owner-1",
	}, nil)
	// The viewer is already in the set: the count must not grow.
	videoRepo.On("AddView", "viewer-1", "video-123").Return(false, nil)
	videoRepo.On("CountReactions", "video-123", entity.ReactionLike).Return(int64(0), nil)
	videoRepo.On("CountReactions", "video-123", entity.ReactionDislike).Return(int64(0), nil)
	videoRepo.On("CountViews", "video-123").Return(int64(1), nil)

	video, err := uc.GetByID("video-123", "viewer-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), video.Views)

	videoRepo.AssertExpectations(t)
}

func TestReact_Like(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	mediaStore := new(MockMediaStore)
	uc := newTestVideoUseCase(videoRepo, mediaStore)

	videoRepo.On("GetByID", "video-123").Return(&entity.Video{
		ID:     "video-123",
		UserID: "owner-1",
	}, nil)
	videoRepo.On("SetReaction", "user-123", "video-123", entity.ReactionLike).Return(nil)

	err := uc.React("user-123", "video-123", entity.ReactionLike)

	assert.NoError(t, err)
	videoRepo.AssertExpectations(t)
}

func TestReact_Dislike(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	mediaStore := new(MockMediaStore)
	uc := newTestVideoUseCase(videoRepo, mediaStore)

	videoRepo.On("GetByID", "video-123").Return(&entity.Video{
		ID:     "video-123",
		UserID: "owner-1",
	}, nil)
	videoRepo.On("SetReaction", "user-123", "video-123", entity.ReactionDislike).Return(nil)

	err := uc.React("user-123", "video-123", entity.ReactionDislike)

	assert.NoError(t, err)
	videoRepo.AssertExpectations(t)
}

func TestReact_VideoNotFound(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	mediaStore := new(MockMediaStore)
	uc := newTestVideoUseCase(videoRepo, mediaStore)

	videoRepo.On("GetByID", "missing").Return(nil, entity.ErrNotFound)

	err := uc.React("user-123", "missing", entity.ReactionLike)

	assert.ErrorIs(t, err, entity.ErrNotFound)
	videoRepo.AssertNotCalled(t, "SetReaction")
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, splitTags(""))
	assert.Equal(t, []string{"go"}, splitTags("go"))
	assert.Equal(t, []string{"go", "backend"}, splitTags("go, backend"))
	assert.Equal(t, []string{"go", "backend"}, splitTags(" go ,, backend , "))
}
