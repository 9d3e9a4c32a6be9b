package repository

import (
	"interview_sim_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// FindAll returns the catalog newest first, optionally filtered by equality
// on topic and/or difficulty.
func (r *QuestionRepository) FindAll(topic, difficulty string) ([]model.PracticeQuestion, error) {
	query := r.DB.Order("created_at DESC")
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var questions []model.PracticeQuestion
	err := query.Find(&questions).Error
	return questions, err
}

// DistinctTopics returns the set of non-empty topic values.
func (r *QuestionRepository) DistinctTopics() ([]string, error) {
	var topics []string
	err := r.DB.Model(&model.PracticeQuestion{}).
		Where("topic IS NOT NULL AND topic <> ''").
		Distinct().
		Pluck("topic", &topics).
		Error
	return topics, err
}

func (r *QuestionRepository) FindByID(id string) (*model.PracticeQuestion, error) {
	var question model.PracticeQuestion
	err := r.DB.Where("id = ?", id).First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}
