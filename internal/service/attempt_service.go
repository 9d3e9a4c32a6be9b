package service

import (
	"errors"
	"interview_sim_backend/internal/model"
	"interview_sim_backend/internal/repository"
	"interview_sim_backend/internal/util"

	"gorm.io/gorm"
)

type AttemptService struct {
	AttemptRepo  *repository.AttemptRepository
	QuestionRepo *repository.QuestionRepository
}

func NewAttemptService(attemptRepo *repository.AttemptRepository, questionRepo *repository.QuestionRepository) *AttemptService {
	return &AttemptService{
		AttemptRepo:  attemptRepo,
		QuestionRepo: questionRepo,
	}
}

// Create verifies the referenced question exists before inserting; an
// attempt must never point at a missing question.
func (s *AttemptService) Create(userID string, in CreateAttemptInput) (*model.UserAttempt, error) {
	question, err := s.QuestionRepo.FindByID(in.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	attempt := &model.UserAttempt{
		UserID:           userID,
		QuestionID:       in.QuestionID,
		IsCorrect:        in.IsCorrect,
		TimeTakenSeconds: in.TimeTakenSeconds,
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}

	attempt.Question = question
	return attempt, nil
}

func (s *AttemptService) List(userID string, limit, offset int) ([]model.UserAttempt, error) {
	return s.AttemptRepo.FindByUser(userID, limit, offset)
}

// Recent reshapes the newest attempts into display sessions. Score and
// feedback are placeholder display values derived from correctness.
func (s *AttemptService) Recent(userID string, limit int) ([]model.RecentSession, error) {
	attempts, err := s.AttemptRepo.FindByUser(userID, limit, 0)
	if err != nil {
		return nil, err
	}

	sessions := make([]model.RecentSession, 0, len(attempts))
	for _, a := range attempts {
		session := model.RecentSession{
			ID:   a.ID,
			Date: a.AttemptedAt,
		}
		if a.Question != nil {
			session.Question = a.Question.QuestionText
		}
		if a.IsCorrect {
			session.Score = 100
			session.Feedback = "Answered correctly"
		} else {
			session.Score = 0
			session.Feedback = "Keep practicing this one"
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
