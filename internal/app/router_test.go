package app

import (
	"encoding/json"
	"interview_sim_backend/internal/config"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock-mode end-to-end: an empty config selects the fixture backend, so the
// whole HTTP surface can be exercised without a database.
func newMockApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.Port = "0"
	require.False(t, cfg.BackendConfigured())
	return NewApp(cfg)
}

func doJSON(app *App, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func TestHealthReportsMockBackend(t *testing.T) {
	app := newMockApp(t)

	w := doJSON(app, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "mock", body["backend"])
	assert.Equal(t, "test", body["environment"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestMockLoginFlow(t *testing.T) {
	app := newMockApp(t)

	w := doJSON(app, http.MethodPost, "/api/auth/login", `{"email":"a@b.com","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			Email    string `json:"email"`
			FullName string `json:"fullName"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "Login successful", body.Message)
	assert.True(t, strings.HasPrefix(body.Token, "mock-jwt-token-"))
	assert.Equal(t, "a@b.com", body.User.Email)
}

func TestMockLoginMissingFields(t *testing.T) {
	app := newMockApp(t)

	w := doJSON(app, http.MethodPost, "/api/auth/login", `{"email":"a@b.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email and password required"}`, w.Body.String())
}

func TestMockRegisterFlow(t *testing.T) {
	app := newMockApp(t)

	w := doJSON(app, http.MethodPost, "/api/auth/register", `{"email":"new@b.com","password":"pw","fullName":"New User"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User created successfully")
	assert.Contains(t, w.Body.String(), "mock-jwt-token-")
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	app := newMockApp(t)

	for _, path := range []string{
		"/api/questions",
		"/api/questions/topics",
		"/api/attempts",
		"/api/attempts/analytics",
		"/api/attempts/recent",
	} {
		w := doJSON(app, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String(), path)
	}
}

func TestMockQuestionsWithBearer(t *testing.T) {
	app := newMockApp(t)

	w := doJSON(app, http.MethodGet, "/api/questions", "", "mock-jwt-token-123")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Questions []struct {
			ID           string `json:"id"`
			QuestionText string `json:"question_text"`
		} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Questions, 4)
	assert.Equal(t, "mock-question-1", body.Questions[0].ID)
}

func TestMockAttemptEndToEnd(t *testing.T) {
	app := newMockApp(t)

	// Missing isCorrect is the pinned validation failure.
	w := doJSON(app, http.MethodPost, "/api/attempts", `{"questionId":"mock-question-1"}`, "mock-jwt-token-123")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Question ID and result are required"}`, w.Body.String())

	w = doJSON(app, http.MethodPost, "/api/attempts", `{"questionId":"mock-question-1","isCorrect":true}`, "mock-jwt-token-123")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Attempt saved successfully")

	w = doJSON(app, http.MethodPost, "/api/attempts", `{"questionId":"ghost","isCorrect":true}`, "mock-jwt-token-123")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Question not found"}`, w.Body.String())
}

func TestMockAttemptListPaginationEndToEnd(t *testing.T) {
	app := newMockApp(t)

	var body struct {
		Attempts []struct {
			ID string `json:"id"`
		} `json:"attempts"`
	}

	w := doJSON(app, http.MethodGet, "/api/attempts", "", "mock-jwt-token-123")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Attempts, 2)

	// limit=1, offset=1 returns exactly the second-newest attempt.
	w = doJSON(app, http.MethodGet, "/api/attempts?limit=1&offset=1", "", "mock-jwt-token-123")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Attempts, 1)
	assert.Equal(t, "mock-attempt-2", body.Attempts[0].ID)
}

func TestMockAnalyticsEndToEnd(t *testing.T) {
	app := newMockApp(t)

	w := doJSON(app, http.MethodGet, "/api/attempts/analytics", "", "mock-jwt-token-123")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Analytics struct {
			TotalSessions  int `json:"totalSessions"`
			AverageScore   int `json:"averageScore"`
			Improvement    int `json:"improvement"`
			PracticeStreak int `json:"practiceStreak"`
		} `json:"analytics"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 24, body.Analytics.TotalSessions)
	assert.Equal(t, 82, body.Analytics.AverageScore)
	assert.Equal(t, 15, body.Analytics.Improvement)
	assert.Equal(t, 7, body.Analytics.PracticeStreak)
}

func TestMockRecentSessionsEndToEnd(t *testing.T) {
	app := newMockApp(t)

	w := doJSON(app, http.MethodGet, "/api/attempts/recent", "", "mock-jwt-token-123")
	require.Equal(t, http.StatusOK, w.Code)

	var sessions []struct {
		Question string `json:"question"`
		Score    int    `json:"score"`
		Feedback string `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sessions))
	require.Len(t, sessions, 2)
	assert.Equal(t, "Tell me about yourself", sessions[0].Question)
	assert.Equal(t, 85, sessions[0].Score)
}

func TestMockAIFeedbackEndToEnd(t *testing.T) {
	app := newMockApp(t)

	// The feedback route sits behind the auth guard.
	w := doJSON(app, http.MethodPost, "/api/ai/feedback", `{"audioFilePath":"/tmp/a.webm","answer":"hi"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(app, http.MethodPost, "/api/ai/feedback", `{"audioFilePath":"/tmp/a.webm","answer":"hi"}`, "mock-jwt-token-123")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Transcript string `json:"transcript"`
		Feedback   string `json:"feedback"`
		Score      int    `json:"score"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Transcript)
	assert.NotEmpty(t, body.Feedback)
	assert.Equal(t, 85, body.Score)
}

func TestUnknownAPIRouteIs404(t *testing.T) {
	app := newMockApp(t)

	w := doJSON(app, http.MethodGet, "/api/does-not-exist", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsExposed(t *testing.T) {
	app := newMockApp(t)

	// Generate at least one sample so the counter family is present.
	doJSON(app, http.MethodGet, "/api/health", "", "")

	w := doJSON(app, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
