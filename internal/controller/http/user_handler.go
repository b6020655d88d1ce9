package http

import (
	"net/http"

	"cliptube/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type RegisterRequest struct {
	ChannelName string `form:"channelName" binding:"required,min=2,max=100"`
	Email       string `form:"email" binding:"required,email"`
	Phone       string `form:"phone" binding:"required"`
	Password    string `form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	ChannelName *string `form:"channelName" json:"channelName"`
	Phone       *string `form:"phone" json:"phone"`
}

type SubscribeRequest struct {
	ChannelID string `json:"channelId" binding:"required"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a user with channel name, email, phone, password and a channel logo image
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Param        channelName formData string true "Channel name"
// @Param        email formData string true "Email address"
// @Param        phone formData string true "Phone number"
// @Param        password formData string true "Password"
// @Param        logo formData file true "Channel logo image"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Error creating user", "error": err.Error()})
		return
	}

	logo, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Error creating user", "error": "logo file is required"})
		return
	}

	user, err := h.userUseCase.Register(req.ChannelName, req.Email, req.Phone, req.Password, logo)
	if err != nil {
		abortWithError(c, err, "Error creating user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "User created successfully", "newUser": user})
}

// Login godoc
// @Summary      Login
// @Description  Verify credentials and issue a bearer token valid for two days
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Error logging in", "error": err.Error()})
		return
	}

	user, token, err := h.userUseCase.Login(req.Email, req.Password)
	if err != nil {
		abortWithError(c, err, "Error logging in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Login successful", "existingUser": user, "token": token})
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Update channel name, phone and/or logo; omitted fields keep their value
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        channelName formData string false "Channel name"
// @Param        phone formData string false "Phone number"
// @Param        logo formData file false "New channel logo image"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/update-profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Error updating profile", "error": err.Error()})
		return
	}

	// Optional; absence means the logo is kept.
	logo, _ := c.FormFile("logo")

	user, err := h.userUseCase.UpdateProfile(userID, req.ChannelName, req.Phone, logo)
	if err != nil {
		abortWithError(c, err, "Error updating profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Profile updated successfully", "updatedUser": user})
}

// Subscribe godoc
// @Summary      Subscribe to a channel
// @Description  Add the channel to the caller's subscriptions and bump the channel's subscriber count. Subscribing to yourself is rejected.
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubscribeRequest true "Target channel"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/subscribe [post]
func (h *UserHandler) Subscribe(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Error subscribing", "error": err.Error()})
		return
	}

	if err := h.userUseCase.Subscribe(userID, req.ChannelID); err != nil {
		abortWithError(c, err, "Error subscribing")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Subscribed successfully"})
}
