package service

import (
	"fmt"
	"interview_sim_backend/internal/model"
	"interview_sim_backend/internal/util"
	"time"
)

// Mock implementations of every capability, mounted when the external-store
// configuration is absent. They keep the frontend demoable without
// credentials; the tokens they mint are placeholders, not a security
// boundary.

const (
	MockUserID   = "mock-user-1"
	MockUserName = "Mock User"
)

func mockToken() string {
	return fmt.Sprintf("mock-jwt-token-%d", time.Now().UnixMilli())
}

type MockAuthService struct{}

func (s *MockAuthService) Register(email, password, fullName string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, util.ErrInvalidCredentials
	}
	if fullName == "" {
		fullName = MockUserName
	}
	user := &model.User{
		UUIDBase: model.UUIDBase{ID: MockUserID},
		Email:    email,
		FullName: fullName,
	}
	return mockToken(), user, nil
}

func (s *MockAuthService) Login(email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, util.ErrInvalidCredentials
	}
	user := &model.User{
		UUIDBase: model.UUIDBase{ID: MockUserID},
		Email:    email,
		FullName: MockUserName,
	}
	return mockToken(), user, nil
}

type MockQuestionService struct {
	questions []model.PracticeQuestion
}

func newMockQuestionService() *MockQuestionService {
	return &MockQuestionService{
		questions: []model.PracticeQuestion{
			{UUIDBase: model.UUIDBase{ID: "mock-question-1"}, QuestionText: "Tell me about yourself.", Topic: "Behavioral", Difficulty: model.DifficultyEasy},
			{UUIDBase: model.UUIDBase{ID: "mock-question-2"}, QuestionText: "What are your strengths?", Topic: "Behavioral", Difficulty: model.DifficultyEasy},
			{UUIDBase: model.UUIDBase{ID: "mock-question-3"}, QuestionText: "Describe a challenging bug you fixed.", Topic: "Software Engineering", Difficulty: model.DifficultyMedium},
			{UUIDBase: model.UUIDBase{ID: "mock-question-4"}, QuestionText: "Explain the bias-variance tradeoff.", Topic: "Machine Learning", Difficulty: model.DifficultyHard},
		},
	}
}

func (s *MockQuestionService) List(topic, difficulty string) ([]model.PracticeQuestion, error) {
	result := make([]model.PracticeQuestion, 0, len(s.questions))
	for _, q := range s.questions {
		if topic != "" && q.Topic != topic {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		result = append(result, q)
	}
	return result, nil
}

func (s *MockQuestionService) Topics() ([]string, error) {
	seen := map[string]bool{}
	var topics []string
	for _, q := range s.questions {
		if q.Topic != "" && !seen[q.Topic] {
			seen[q.Topic] = true
			topics = append(topics, q.Topic)
		}
	}
	return topics, nil
}

func (s *MockQuestionService) GetByID(id string) (*model.PracticeQuestion, error) {
	for i := range s.questions {
		if s.questions[i].ID == id {
			return &s.questions[i], nil
		}
	}
	return nil, util.ErrQuestionNotFound
}

type MockAttemptService struct {
	questions *MockQuestionService
}

func (s *MockAttemptService) Create(userID string, in CreateAttemptInput) (*model.UserAttempt, error) {
	question, err := s.questions.GetByID(in.QuestionID)
	if err != nil {
		return nil, err
	}
	return &model.UserAttempt{
		UUIDBase:         model.UUIDBase{ID: fmt.Sprintf("mock-attempt-%d", time.Now().UnixMilli())},
		UserID:           userID,
		QuestionID:       in.QuestionID,
		IsCorrect:        in.IsCorrect,
		TimeTakenSeconds: in.TimeTakenSeconds,
		AttemptedAt:      time.Now(),
		Question:         question,
	}, nil
}

func (s *MockAttemptService) List(userID string, limit, offset int) ([]model.UserAttempt, error) {
	now := time.Now()
	attempts := []model.UserAttempt{
		{
			UUIDBase:    model.UUIDBase{ID: "mock-attempt-1"},
			UserID:      userID,
			QuestionID:  "mock-question-1",
			IsCorrect:   true,
			AttemptedAt: now,
			Question:    &s.questions.questions[0],
		},
		{
			UUIDBase:    model.UUIDBase{ID: "mock-attempt-2"},
			UserID:      userID,
			QuestionID:  "mock-question-2",
			IsCorrect:   false,
			AttemptedAt: now.Add(-24 * time.Hour),
			Question:    &s.questions.questions[1],
		},
	}

	if offset >= len(attempts) {
		return []model.UserAttempt{}, nil
	}
	attempts = attempts[offset:]
	if limit > 0 && limit < len(attempts) {
		attempts = attempts[:limit]
	}
	return attempts, nil
}

func (s *MockAttemptService) Recent(userID string, limit int) ([]model.RecentSession, error) {
	now := time.Now()
	sessions := []model.RecentSession{
		{
			ID:       "mock-attempt-1",
			Question: "Tell me about yourself",
			Score:    85,
			Feedback: "Great confidence and clear communication",
			Date:     now,
		},
		{
			ID:       "mock-attempt-2",
			Question: "What are your strengths?",
			Score:    78,
			Feedback: "Good examples, could be more specific",
			Date:     now.Add(-24 * time.Hour),
		},
	}
	if limit > 0 && limit < len(sessions) {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

type MockAnalyticsService struct{}

func (s *MockAnalyticsService) Dashboard(userID, fullName string) (*model.DashboardAnalytics, error) {
	return &model.DashboardAnalytics{
		TotalSessions:  24,
		AverageScore:   82,
		Improvement:    15,
		PracticeStreak: 7,
		Performance: model.UserPerformance{
			UserID:             userID,
			FullName:           fullName,
			TotalAttempts:      24,
			CorrectAttempts:    20,
			AccuracyPercentage: 82,
			AvgTimePerQuestion: 45,
		},
	}, nil
}

type MockFeedbackService struct{}

func (s *MockFeedbackService) Feedback(audioFilePath, answer string) (*model.FeedbackResult, error) {
	return &model.FeedbackResult{
		Transcript: "This is a mock transcript of your answer...",
		Feedback:   "Great response! You showed confidence and provided specific examples. Consider adding more quantifiable achievements to make your answer even stronger.",
		Score:      85,
	}, nil
}

// NewMockProviders wires the full fixture set.
func NewMockProviders() *Providers {
	questions := newMockQuestionService()
	return &Providers{
		Auth:      &MockAuthService{},
		Question:  questions,
		Attempt:   &MockAttemptService{questions: questions},
		Analytics: &MockAnalyticsService{},
		Feedback:  &MockFeedbackService{},
	}
}
