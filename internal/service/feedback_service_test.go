package service

import (
	"encoding/json"
	"interview_sim_backend/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackForwardsPredictCall(t *testing.T) {
	var gotPath string
	var gotBody struct {
		Data []string `json:"data"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []string{"the transcript", "the feedback"},
		})
	}))
	defer server.Close()

	svc := NewFeedbackService(config.AIConfig{ServiceURL: server.URL})

	result, err := svc.Feedback("/uploads/audio/abc.webm", "my answer")
	require.NoError(t, err)

	assert.Equal(t, "/api/predict", gotPath)
	assert.Equal(t, []string{"/uploads/audio/abc.webm", "my answer"}, gotBody.Data)
	assert.Equal(t, "the transcript", result.Transcript)
	assert.Equal(t, "the feedback", result.Feedback)
}

func TestFeedbackNon200IsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := NewFeedbackService(config.AIConfig{ServiceURL: server.URL})

	_, err := svc.Feedback("path", "answer")
	assert.Error(t, err)
}

func TestFeedbackShortResponseIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []string{"only one"}})
	}))
	defer server.Close()

	svc := NewFeedbackService(config.AIConfig{ServiceURL: server.URL})

	_, err := svc.Feedback("path", "answer")
	assert.Error(t, err)
}

func TestFeedbackUnreachableService(t *testing.T) {
	svc := NewFeedbackService(config.AIConfig{ServiceURL: "http://127.0.0.1:1"})

	_, err := svc.Feedback("path", "answer")
	assert.Error(t, err)
}
