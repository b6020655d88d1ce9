package usecase

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"cliptube/internal/entity"
	"cliptube/internal/repo/persistent"
	"cliptube/pkg/jwt"
	"cliptube/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserUseCase interface {
	Register(channelName, email, phone, password string, logo *multipart.FileHeader) (*entity.User, error)
	Login(email, password string) (*entity.User, string, error)
	UpdateProfile(userID string, channelName, phone *string, logo *multipart.FileHeader) (*entity.User, error)
	Subscribe(subscriberID, channelID string) error
}

type userUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	mediaStore MediaStore
	publisher  TaskPublisher
	logger     *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	mediaStore MediaStore,
	publisher TaskPublisher,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		mediaStore: mediaStore,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *userUseCase) Register(channelName, email, phone, password string, logo *multipart.FileHeader) (*entity.User, error) {
	_, err := uc.userRepo.GetByEmail(email)
	if err == nil {
		return nil, entity.ErrEmailTaken
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}

	logoURL, logoKey, err := uc.uploadLogo(logo)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ChannelName: channelName,
		Email:       email,
		Phone:       phone,
		Password:    string(hashedPassword),
		LogoURL:     logoURL,
		LogoKey:     logoKey,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.Password = ""
	return user, nil
}

func (uc *userUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", entity.ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.ChannelName, user.Email, user.Phone, user.LogoKey)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	channels, err := uc.userRepo.GetSubscribedChannelIDs(user.ID)
	if err == nil {
		user.SubscribedChannels = channels
	}

	user.Password = ""
	return user, token, nil
}

// UpdateProfile applies a replace-if-provided merge: nil fields keep their
// stored value. A new logo replaces the stored asset.
func (uc *userUseCase) UpdateProfile(userID string, channelName, phone *string, logo *multipart.FileHeader) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if channelName != nil {
		user.ChannelName = *channelName
	}
	if phone != nil {
		user.Phone = *phone
	}

	if logo != nil {
		if user.LogoKey != "" {
			if err := uc.mediaStore.DeleteFile(user.LogoKey); err != nil {
				uc.logger.Warn("Failed to delete old logo %s: %v", user.LogoKey, err)
			}
		}

		logoURL, logoKey, err := uc.uploadLogo(logo)
		if err != nil {
			return nil, err
		}
		user.LogoURL = logoURL
		user.LogoKey = logoKey
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.Password = ""
	return user, nil
}

func (uc *userUseCase) Subscribe(subscriberID, channelID string) error {
	if subscriberID == channelID {
		return entity.ErrSelfSubscribe
	}

	if _, err := uc.userRepo.GetByID(channelID); err != nil {
		return err
	}

	added, err := uc.userRepo.AddSubscription(subscriberID, channelID)
	if err != nil {
		uc.logger.Error("Failed to create subscription: %v", err)
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	// Repeat subscriptions are set-adds: nothing changed, nothing to count
	// or announce.
	if !added {
		return nil
	}

	if err := uc.userRepo.IncrementSubscribers(channelID); err != nil {
		uc.logger.Error("Failed to increment subscribers for %s: %v", channelID, err)
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	if uc.publisher != nil {
		go func() {
			task := map[string]interface{}{
				"type":          "subscription",
				"user_id":       channelID,
				"subscriber_id": subscriberID,
				"priority":      4,
			}
			if err := uc.publisher.PublishNotificationTask(task); err != nil {
				uc.logger.Error("[NOTIFICATION QUEUE] Failed to publish subscription task: %v", err)
			}
		}()
	}

	return nil
}

func (uc *userUseCase) uploadLogo(logo *multipart.FileHeader) (string, string, error) {
	src, err := logo.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open logo file: %w", err)
	}
	defer src.Close()

	contentType := logo.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	logoKey := fmt.Sprintf("logos/%s%s", uuid.New().String(), filepath.Ext(logo.Filename))
	logoURL, err := uc.mediaStore.UploadFile(logoKey, src, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload logo: %v", err)
		return "", "", fmt.Errorf("failed to upload logo: %w", err)
	}

	return logoURL, logoKey, nil
}
