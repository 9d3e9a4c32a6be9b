package controller

import (
	"errors"
	"interview_sim_backend/internal/service"
	"interview_sim_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Questions service.QuestionProvider
}

func NewQuestionController(questions service.QuestionProvider) *QuestionController {
	return &QuestionController{Questions: questions}
}

// List godoc
// @Summary List practice questions
// @Description Shared catalog, optionally filtered by topic and difficulty
// @Tags questions
// @Produce json
// @Param topic query string false "Topic filter"
// @Param difficulty query string false "Difficulty filter"
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /questions [get]
func (ctl *QuestionController) List(ctx *gin.Context) {
	questions, err := ctl.Questions.List(ctx.Query("topic"), ctx.Query("difficulty"))
	if err != nil {
		util.Error(ctx, 500, "Failed to fetch questions")
		return
	}

	util.Success(ctx, gin.H{"questions": questions})
}

// Topics godoc
// @Summary List distinct question topics
// @Tags questions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /questions/topics [get]
func (ctl *QuestionController) Topics(ctx *gin.Context) {
	topics, err := ctl.Questions.Topics()
	if err != nil {
		util.Error(ctx, 500, "Failed to fetch topics")
		return
	}

	util.Success(ctx, gin.H{"topics": topics})
}

// GetByID godoc
// @Summary Fetch one question
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Security ApiKeyAuth
// @Router /questions/{id} [get]
func (ctl *QuestionController) GetByID(ctx *gin.Context) {
	question, err := ctl.Questions.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, "Question not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"question": question})
}
