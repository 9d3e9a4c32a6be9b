package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestPerformanceForUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPerformanceRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WithArgs("user-1").
		WillReturnRows(sqlmock.
			NewRows([]string{"total_attempts", "correct_attempts", "accuracy_percentage", "avg_time_per_question"}).
			AddRow(10, 8, 80.0, 42.5))

	perf, err := repo.ForUser("user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", perf.UserID)
	assert.Equal(t, 10, perf.TotalAttempts)
	assert.Equal(t, 8, perf.CorrectAttempts)
	assert.InDelta(t, 80.0, perf.AccuracyPercentage, 0.001)
	assert.InDelta(t, 42.5, perf.AvgTimePerQuestion, 0.001)
}

func TestPerformanceForUserNoAttempts(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPerformanceRepository(db)

	// The aggregate query always yields exactly one row; with no attempts it
	// is the zero row, never a "not found" error.
	mock.ExpectQuery("SELECT COUNT\\(\\*\\)").
		WithArgs("new-user").
		WillReturnRows(sqlmock.
			NewRows([]string{"total_attempts", "correct_attempts", "accuracy_percentage", "avg_time_per_question"}).
			AddRow(0, 0, 0.0, 0.0))

	perf, err := repo.ForUser("new-user")
	require.NoError(t, err)

	assert.Equal(t, "new-user", perf.UserID)
	assert.Zero(t, perf.TotalAttempts)
	assert.Zero(t, perf.AccuracyPercentage)
}
