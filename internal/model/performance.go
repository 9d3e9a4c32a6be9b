package model

// UserPerformance is the per-user aggregate the original system read from a
// store-maintained view. It is a derived read model here: computed in a
// single query, never written, zero-valued for users with no attempts.
//
// swagger:model UserPerformance
type UserPerformance struct {
	UserID             string  `json:"user_id"`
	FullName           string  `json:"full_name"`
	TotalAttempts      int     `json:"total_attempts"`
	CorrectAttempts    int     `json:"correct_attempts"`
	AccuracyPercentage float64 `json:"accuracy_percentage"`
	AvgTimePerQuestion float64 `json:"avg_time_per_question"`
}
