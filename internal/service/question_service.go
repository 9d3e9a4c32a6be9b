package service

import (
	"context"
	"encoding/json"
	"errors"
	"interview_sim_backend/internal/model"
	"interview_sim_backend/internal/repository"
	"interview_sim_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	topicsCacheKey = "questions:topics"
	topicsCacheTTL = 10 * time.Minute
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	Redis        *redis.Client
}

func NewQuestionService(questionRepo *repository.QuestionRepository, rdb *redis.Client) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		Redis:        rdb,
	}
}

func (s *QuestionService) List(topic, difficulty string) ([]model.PracticeQuestion, error) {
	return s.QuestionRepo.FindAll(topic, difficulty)
}

// Topics serves the distinct topic set, cached in redis when available. The
// catalog changes rarely, the dashboard asks often.
func (s *QuestionService) Topics() ([]string, error) {
	ctx := context.Background()

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, topicsCacheKey).Result(); err == nil {
			var topics []string
			if err := json.Unmarshal([]byte(cached), &topics); err == nil {
				return topics, nil
			}
		}
	}

	topics, err := s.QuestionRepo.DistinctTopics()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(topics); err == nil {
			s.Redis.Set(ctx, topicsCacheKey, data, topicsCacheTTL)
		}
	}

	return topics, nil
}

func (s *QuestionService) GetByID(id string) (*model.PracticeQuestion, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	return question, err
}
