package model

import "time"

// UserAttempt records one practice action. Immutable after insert.
//
// swagger:model UserAttempt
type UserAttempt struct {
	UUIDBase
	UserID           string    `gorm:"type:varchar(36);index;not null" json:"user_id"`
	QuestionID       string    `gorm:"type:varchar(36);index;not null" json:"question_id"`
	IsCorrect        bool      `json:"is_correct"`
	TimeTakenSeconds *int      `json:"time_taken_seconds"`
	AttemptedAt      time.Time `gorm:"index" json:"attempted_at"`

	// Joined question fields for listing; named after the hosted-store
	// relation the frontend already consumes.
	Question *PracticeQuestion `gorm:"foreignKey:QuestionID" json:"practice_questions,omitempty"`
}

func (UserAttempt) TableName() string {
	return "user_attempts"
}
