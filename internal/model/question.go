package model

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// PracticeQuestion is the shared read-only interview question catalog.
// JSON field names mirror the hosted-store rows the frontend was built
// against.
//
// swagger:model PracticeQuestion
type PracticeQuestion struct {
	UUIDBase
	QuestionText string `gorm:"type:text;not null" json:"question_text"`
	Topic        string `gorm:"size:100;index" json:"topic"`
	Difficulty   string `gorm:"size:20;index" json:"difficulty"`
}

func (PracticeQuestion) TableName() string {
	return "practice_questions"
}
