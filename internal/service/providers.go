package service

import "interview_sim_backend/internal/model"

// The backend runs in exactly one of two modes, fixed at startup: real
// (hosted database + JWT) or mock (fixtures, no external services). Each
// capability below has one implementation per mode; the app wires whichever
// set the config gate selects, and controllers never know the difference.

type AuthProvider interface {
	Register(email, password, fullName string) (string, *model.User, error)
	Login(email, password string) (string, *model.User, error)
}

type QuestionProvider interface {
	List(topic, difficulty string) ([]model.PracticeQuestion, error)
	Topics() ([]string, error)
	GetByID(id string) (*model.PracticeQuestion, error)
}

type CreateAttemptInput struct {
	QuestionID       string
	IsCorrect        bool
	TimeTakenSeconds *int
}

type AttemptProvider interface {
	Create(userID string, in CreateAttemptInput) (*model.UserAttempt, error)
	List(userID string, limit, offset int) ([]model.UserAttempt, error)
	Recent(userID string, limit int) ([]model.RecentSession, error)
}

type AnalyticsProvider interface {
	Dashboard(userID, fullName string) (*model.DashboardAnalytics, error)
}

type FeedbackProvider interface {
	Feedback(audioFilePath, answer string) (*model.FeedbackResult, error)
}

// Providers bundles one implementation of every capability.
type Providers struct {
	Auth      AuthProvider
	Question  QuestionProvider
	Attempt   AttemptProvider
	Analytics AnalyticsProvider
	Feedback  FeedbackProvider
}
