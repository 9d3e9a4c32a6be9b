package service

import (
	"interview_sim_backend/internal/model"
	"interview_sim_backend/internal/repository"
	"math"
)

type AnalyticsService struct {
	PerformanceRepo *repository.PerformanceRepository
}

func NewAnalyticsService(performanceRepo *repository.PerformanceRepository) *AnalyticsService {
	return &AnalyticsService{PerformanceRepo: performanceRepo}
}

// Dashboard reads the per-user aggregate (zero-valued when the user has no
// attempts yet) and reshapes it into display fields.
func (s *AnalyticsService) Dashboard(userID, fullName string) (*model.DashboardAnalytics, error) {
	perf, err := s.PerformanceRepo.ForUser(userID)
	if err != nil {
		return nil, err
	}
	perf.FullName = fullName

	return &model.DashboardAnalytics{
		TotalSessions:  perf.TotalAttempts,
		AverageScore:   int(math.Round(perf.AccuracyPercentage)),
		Improvement:    improvementFor(perf),
		PracticeStreak: streakFor(perf),
		Performance:    *perf,
	}, nil
}

// improvementFor and streakFor are placeholder display heuristics, thresholds
// only. Kept as pure functions so they can be swapped for real trend metrics
// once attempts carry enough history.

func improvementFor(p *model.UserPerformance) int {
	if p.TotalAttempts < 5 {
		return 0
	}
	switch {
	case p.AccuracyPercentage >= 80:
		return 15
	case p.AccuracyPercentage >= 60:
		return 10
	case p.AccuracyPercentage >= 40:
		return 5
	default:
		return 0
	}
}

func streakFor(p *model.UserPerformance) int {
	if p.TotalAttempts > 7 {
		return 7
	}
	return p.TotalAttempts
}
