package http

import (
	"net/http"

	"cliptube/internal/entity"
	"cliptube/internal/usecase"
	"cliptube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

type UploadVideoRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Category    string `form:"category"`
	Tags        string `form:"tags"`
}

type UpdateVideoRequest struct {
	Title       *string `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
	Category    *string `form:"category" json:"category"`
	Tags        *string `form:"tags" json:"tags"`
}

type ReactionRequest struct {
	VideoID string `json:"videoId" binding:"required"`
}

// Upload godoc
// @Summary      Upload a video
// @Description  Upload a video file with its thumbnail; tags are a comma-separated list
// @Tags         video
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        description formData string false "Description"
// @Param        category formData string false "Category"
// @Param        tags formData string false "Comma-separated tags"
// @Param        video formData file true "Video file"
// @Param        thumbnail formData file true "Thumbnail image"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /video/upload [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UploadVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Error uploading video", "error": err.Error()})
		return
	}

	videoFile, videoErr := c.FormFile("video")
	thumbnailFile, thumbErr := c.FormFile("thumbnail")
	if videoErr != nil || thumbErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Please upload a video and a thumbnail"})
		return
	}

	video, err := h.videoUseCase.Upload(userID, req.Title, req.Description, req.Category, req.Tags, videoFile, thumbnailFile)
	if err != nil {
		h.logger.Error("Failed to upload video: %v", err)
		abortWithError(c, err, "Error uploading video")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Video uploaded successfully", "video": video})
}

// Update godoc
// @Summary      Update a video
// @Description  Update metadata and/or replace the thumbnail; omitted fields keep their value. Owner only.
// @Tags         video
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        title formData string false "Title"
// @Param        description formData string false "Description"
// @Param        category formData string false "Category"
// @Param        tags formData string false "Comma-separated tags"
// @Param        thumbnail formData file false "New thumbnail image"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /video/update/{id} [put]
func (h *VideoHandler) Update(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	var req UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Error updating video", "error": err.Error()})
		return
	}

	// Optional; absence means the thumbnail is kept.
	thumbnail, _ := c.FormFile("thumbnail")

	video, err := h.videoUseCase.Update(videoID, userID, req.Title, req.Description, req.Category, req.Tags, thumbnail)
	if err != nil {
		abortWithError(c, err, "Error updating video")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Video updated successfully", "video": video})
}

// Delete godoc
// @Summary      Delete a video
// @Description  Delete the record and release both stored media assets. Owner only.
// @Tags         video
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /video/delete/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	if err := h.videoUseCase.Delete(videoID, userID); err != nil {
		abortWithError(c, err, "Error deleting video")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Video deleted successfully"})
}

// MyVideos godoc
// @Summary      List the caller's videos
// @Tags         video
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /video/my-videos [get]
func (h *VideoHandler) MyVideos(c *gin.Context) {
	userID := c.GetString("user_id")

	videos, err := h.videoUseCase.ListByUser(userID)
	if err != nil {
		h.logger.Error("Failed to fetch videos: %v", err)
		abortWithError(c, err, "Error fetching videos")
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// ListAll godoc
// @Summary      List all videos
// @Tags         video
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /video/all [get]
func (h *VideoHandler) ListAll(c *gin.Context) {
	videos, err := h.videoUseCase.ListAll()
	if err != nil {
		h.logger.Error("Failed to fetch videos: %v", err)
		abortWithError(c, err, "Error fetching videos")
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// GetByID godoc
// @Summary      Fetch a video and record the view
// @Description  Returns the video with like/dislike/view counts; the caller is added to the viewer set (idempotent)
// @Tags         video
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /video/{id} [get]
func (h *VideoHandler) GetByID(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	video, err := h.videoUseCase.GetByID(videoID, userID)
	if err != nil {
		abortWithError(c, err, "Error fetching video")
		return
	}

	c.JSON(http.StatusOK, gin.H{"video": video})
}

// ListByCategory godoc
// @Summary      List videos in a category
// @Tags         video
// @Produce      json
// @Param        category path string true "Category"
// @Success      200  {object}  map[string]interface{}
// @Router       /video/category/{category} [get]
func (h *VideoHandler) ListByCategory(c *gin.Context) {
	videos, err := h.videoUseCase.ListByCategory(c.Param("category"))
	if err != nil {
		h.logger.Error("Failed to fetch videos: %v", err)
		abortWithError(c, err, "Error fetching videos")
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// ListByTag godoc
// @Summary      List videos carrying a tag
// @Tags         video
// @Produce      json
// @Param        tag path string true "Tag"
// @Success      200  {object}  map[string]interface{}
// @Router       /video/tag/{tag} [get]
func (h *VideoHandler) ListByTag(c *gin.Context) {
	videos, err := h.videoUseCase.ListByTag(c.Param("tag"))
	if err != nil {
		h.logger.Error("Failed to fetch videos: %v", err)
		abortWithError(c, err, "Error fetching videos")
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// Like godoc
// @Summary      Like a video
// @Description  Adds the caller to the liked set and removes them from the disliked set
// @Tags         video
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ReactionRequest true "Target video"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /video/like [post]
func (h *VideoHandler) Like(c *gin.Context) {
	h.react(c, entity.ReactionLike, "Video liked successfully", "Error liking video")
}

// Dislike godoc
// @Summary      Dislike a video
// @Description  Adds the caller to the disliked set and removes them from the liked set
// @Tags         video
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ReactionRequest true "Target video"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /video/dislike [post]
func (h *VideoHandler) Dislike(c *gin.Context) {
	h.react(c, entity.ReactionDislike, "Video disliked successfully", "Error disliking video")
}

func (h *VideoHandler) react(c *gin.Context, reaction entity.ReactionType, successMsg, failureMsg string) {
	userID := c.GetString("user_id")

	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": failureMsg, "error": err.Error()})
		return
	}

	if err := h.videoUseCase.React(userID, req.VideoID, reaction); err != nil {
		abortWithError(c, err, failureMsg)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": successMsg})
}
