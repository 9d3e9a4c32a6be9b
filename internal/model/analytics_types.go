package model

import "time"

// DashboardAnalytics reshapes the raw performance record into the display
// fields the dashboard renders. Improvement and streak are placeholder
// threshold heuristics, not derived metrics.
//
// swagger:model DashboardAnalytics
type DashboardAnalytics struct {
	TotalSessions  int             `json:"totalSessions"`
	AverageScore   int             `json:"averageScore"`
	Improvement    int             `json:"improvement"`
	PracticeStreak int             `json:"practiceStreak"`
	Performance    UserPerformance `json:"performance"`
}

// RecentSession is one attempt reshaped for the "recent sessions" panel.
type RecentSession struct {
	ID       string    `json:"id"`
	Question string    `json:"question"`
	Score    int       `json:"score"`
	Feedback string    `json:"feedback"`
	Date     time.Time `json:"date"`
}

// FeedbackResult is the named reshaping of the inference service's ordered
// [transcript, feedback] pair. Score is only populated by the fixture
// backend; the inference service does not return one.
type FeedbackResult struct {
	Transcript string `json:"transcript"`
	Feedback   string `json:"feedback"`
	Score      int    `json:"score,omitempty"`
}
