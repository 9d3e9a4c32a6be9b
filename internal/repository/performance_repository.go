package repository

import (
	"interview_sim_backend/internal/model"

	"gorm.io/gorm"
)

// PerformanceRepository computes the per-user aggregate the dashboard reads.
// The hosted store the original design fronted maintained this as a view;
// here it is one aggregate SELECT over user_attempts. Read-only by contract.
type PerformanceRepository struct {
	DB *gorm.DB
}

func NewPerformanceRepository(db *gorm.DB) *PerformanceRepository {
	return &PerformanceRepository{DB: db}
}

// ForUser never reports "no rows": a user without attempts gets the zero
// aggregate, so first use cannot fail.
func (r *PerformanceRepository) ForUser(userID string) (*model.UserPerformance, error) {
	var perf model.UserPerformance
	err := r.DB.Raw(`
		SELECT COUNT(*)                              AS total_attempts,
		       COALESCE(SUM(is_correct), 0)          AS correct_attempts,
		       COALESCE(AVG(is_correct) * 100, 0)    AS accuracy_percentage,
		       COALESCE(AVG(time_taken_seconds), 0)  AS avg_time_per_question
		FROM user_attempts
		WHERE user_id = ? AND deleted_at IS NULL`, userID).
		Scan(&perf).
		Error
	if err != nil {
		return nil, err
	}

	perf.UserID = userID
	return &perf, nil
}
