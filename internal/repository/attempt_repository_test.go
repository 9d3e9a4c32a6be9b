package repository

import (
	"interview_sim_backend/internal/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptFindByUserPreloadsQuestion(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAttemptRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `user_attempts`").
		WithArgs("user-1", 2).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "question_id", "is_correct", "attempted_at"}).
			AddRow("a-1", "user-1", "q-1", true, now).
			AddRow("a-2", "user-1", "q-1", false, now.Add(-time.Hour)))

	mock.ExpectQuery("SELECT \\* FROM `practice_questions`").
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "question_text", "topic", "difficulty"}).
			AddRow("q-1", "Tell me about yourself.", "Behavioral", "easy"))

	attempts, err := repo.FindByUser("user-1", 2, 0)
	require.NoError(t, err)
	require.Len(t, attempts, 2)

	require.NotNil(t, attempts[0].Question)
	assert.Equal(t, "Tell me about yourself.", attempts[0].Question.QuestionText)
	assert.True(t, attempts[0].IsCorrect)
	assert.False(t, attempts[1].IsCorrect)
}

func TestAttemptFindByUserOffset(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAttemptRepository(db)

	// limit=1, offset=1: both are bound parameters after user_id, and the
	// result is the second-newest attempt.
	mock.ExpectQuery("SELECT \\* FROM `user_attempts`").
		WithArgs("user-1", 1, 1).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "user_id", "question_id", "is_correct", "attempted_at"}).
			AddRow("a-2", "user-1", "q-1", false, time.Now().Add(-time.Hour)))

	mock.ExpectQuery("SELECT \\* FROM `practice_questions`").
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "question_text"}).
			AddRow("q-1", "Tell me about yourself."))

	attempts, err := repo.FindByUser("user-1", 1, 1)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, "a-2", attempts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptFindByUserEmpty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAttemptRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `user_attempts`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	attempts, err := repo.FindByUser("user-1", 50, 0)
	require.NoError(t, err)
	assert.Empty(t, attempts)
}

func TestAttemptCreateSetsAttemptedAt(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAttemptRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `user_attempts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	a := &model.UserAttempt{
		UserID:     "user-1",
		QuestionID: "q-1",
		IsCorrect:  true,
	}
	require.NoError(t, repo.Create(a))

	assert.False(t, a.AttemptedAt.IsZero())
	assert.NotEmpty(t, a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
