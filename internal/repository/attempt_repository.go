package repository

import (
	"interview_sim_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.UserAttempt) error {
	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = time.Now()
	}
	return r.DB.Create(attempt).Error
}

// FindByUser returns the user's attempts newest first with the referenced
// question joined in, paginated by limit/offset.
func (r *AttemptRepository) FindByUser(userID string, limit, offset int) ([]model.UserAttempt, error) {
	var attempts []model.UserAttempt
	err := r.DB.Preload("Question").
		Where("user_id = ?", userID).
		Order("attempted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&attempts).
		Error
	return attempts, err
}
