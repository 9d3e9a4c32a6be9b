package controller

import (
	"fmt"
	"interview_sim_backend/internal/service"
	"interview_sim_backend/internal/util"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"interview_sim_backend/pkg/logger"
)

type FeedbackController struct {
	Feedback service.FeedbackProvider
	Storage  *service.StorageService
}

func NewFeedbackController(feedback service.FeedbackProvider, storage *service.StorageService) *FeedbackController {
	return &FeedbackController{
		Feedback: feedback,
		Storage:  storage,
	}
}

// swagger:model FeedbackRequest
type FeedbackRequest struct {
	AudioFilePath string `json:"audioFilePath"`
	Answer        string `json:"answer"`
}

// GetFeedback godoc
// @Summary AI feedback on a recorded answer
// @Description Pure proxy to the inference service; no retries, no audio inspection
// @Tags ai
// @Accept json
// @Produce json
// @Param body body FeedbackRequest true "Answer reference"
// @Success 200 {object} model.FeedbackResult
// @Failure 500 {object} map[string]string
// @Security ApiKeyAuth
// @Router /ai/feedback [post]
func (ctl *FeedbackController) GetFeedback(ctx *gin.Context) {
	var req FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	result, err := ctl.Feedback.Feedback(req.AudioFilePath, req.Answer)
	if err != nil {
		logger.Log.Error("AI feedback error", zap.Error(err))
		util.Error(ctx, 500, "AI service error")
		return
	}

	util.Success(ctx, result)
}

// UploadAudio godoc
// @Summary Upload a recorded answer
// @Description Stores the audio blob and returns the path to hand to /ai/feedback
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio recording"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Security ApiKeyAuth
// @Router /ai/upload [post]
func (ctl *FeedbackController) UploadAudio(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("audio")
	if err != nil {
		util.BadRequest(ctx, "Audio file required")
		return
	}

	// First open sniffs the type, second streams the upload.
	probe, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	mimeType, err := util.ValidateMimeType(probe, util.AllowedAudioTypes)
	probe.Close()
	if err != nil {
		util.BadRequest(ctx, "Unsupported audio format")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	filename := fmt.Sprintf("audio/%s%s", uuid.New().String(), ext)

	url, err := ctl.Storage.Upload(ctx.Request.Context(), filename, file, fileHeader.Size, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"audioFilePath": url})
}
