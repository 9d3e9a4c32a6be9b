package controller

import (
	"errors"
	"interview_sim_backend/internal/service"
	"interview_sim_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	defaultAttemptLimit = 50
	defaultRecentLimit  = 5
)

type AttemptController struct {
	Attempts  service.AttemptProvider
	Analytics service.AnalyticsProvider
}

func NewAttemptController(attempts service.AttemptProvider, analytics service.AnalyticsProvider) *AttemptController {
	return &AttemptController{
		Attempts:  attempts,
		Analytics: analytics,
	}
}

// swagger:model CreateAttemptRequest
type CreateAttemptRequest struct {
	QuestionID       string `json:"questionId"`
	IsCorrect        *bool  `json:"isCorrect"`
	TimeTakenSeconds *int   `json:"timeTakenSeconds"`
}

// Create godoc
// @Summary Record a practice attempt
// @Description Validates the referenced question exists and inserts one immutable attempt
// @Tags attempts
// @Accept json
// @Produce json
// @Param body body CreateAttemptRequest true "Attempt"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /attempts [post]
func (ctl *AttemptController) Create(ctx *gin.Context) {
	var req CreateAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Question ID and result are required")
		return
	}
	if req.QuestionID == "" || req.IsCorrect == nil {
		util.BadRequest(ctx, "Question ID and result are required")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Authentication required")
		return
	}

	attempt, err := ctl.Attempts.Create(claims.UserID, service.CreateAttemptInput{
		QuestionID:       req.QuestionID,
		IsCorrect:        *req.IsCorrect,
		TimeTakenSeconds: req.TimeTakenSeconds,
	})
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found")
		} else {
			util.Error(ctx, 500, "Failed to save attempt")
		}
		return
	}

	util.Created(ctx, gin.H{
		"message": "Attempt saved successfully",
		"attempt": attempt,
	})
}

// List godoc
// @Summary List the caller's attempts
// @Description Newest first, question joined in, paginated by limit/offset
// @Tags attempts
// @Produce json
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Offset (default 0)"
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /attempts [get]
func (ctl *AttemptController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Authentication required")
		return
	}

	limit := util.ParseIntDefault(ctx.Query("limit"), defaultAttemptLimit)
	offset := util.ParseIntDefault(ctx.Query("offset"), 0)

	attempts, err := ctl.Attempts.List(claims.UserID, limit, offset)
	if err != nil {
		util.Error(ctx, 500, "Failed to fetch attempts")
		return
	}

	util.Success(ctx, gin.H{"attempts": attempts})
}

// GetAnalytics godoc
// @Summary Caller's performance analytics
// @Description Zero-valued aggregate for users with no attempts yet
// @Tags attempts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /attempts/analytics [get]
func (ctl *AttemptController) GetAnalytics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Authentication required")
		return
	}

	analytics, err := ctl.Analytics.Dashboard(claims.UserID, claims.FullName)
	if err != nil {
		util.Error(ctx, 500, "Failed to fetch analytics")
		return
	}

	util.Success(ctx, gin.H{"analytics": analytics})
}

// Recent godoc
// @Summary Recent practice sessions for the dashboard
// @Tags attempts
// @Produce json
// @Param limit query int false "Max sessions (default 5)"
// @Success 200 {array} model.RecentSession
// @Security ApiKeyAuth
// @Router /attempts/recent [get]
func (ctl *AttemptController) Recent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "Authentication required")
		return
	}

	limit := util.ParseIntDefault(ctx.Query("limit"), defaultRecentLimit)

	sessions, err := ctl.Attempts.Recent(claims.UserID, limit)
	if err != nil {
		util.Error(ctx, 500, "Failed to fetch attempts")
		return
	}

	// The dashboard consumes a bare array here, unlike the wrapped list.
	util.Success(ctx, sessions)
}
