package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"interview_sim_backend/internal/config"
	"interview_sim_backend/internal/model"
	"io"
	"net/http"
)

// FeedbackService is a pure proxy to the external inference service (a
// gradio app exposing /api/predict). No retries, no timeout beyond the
// transport default; a failed call is surfaced as-is.
type FeedbackService struct {
	ServiceURL string
	Client     *http.Client
}

func NewFeedbackService(cfg config.AIConfig) *FeedbackService {
	return &FeedbackService{
		ServiceURL: cfg.ServiceURL,
		Client:     &http.Client{},
	}
}

type predictRequest struct {
	Data []string `json:"data"`
}

type predictResponse struct {
	Data []string `json:"data"`
}

// Feedback forwards both values as one predict call and reshapes the ordered
// [transcript, feedback] pair into named fields.
func (s *FeedbackService) Feedback(audioFilePath, answer string) (*model.FeedbackResult, error) {
	body, err := json.Marshal(predictRequest{Data: []string{audioFilePath, answer}})
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Post(s.ServiceURL+"/api/predict", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("AI service error (status %d): %s", resp.StatusCode, string(raw))
	}

	var result predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if len(result.Data) < 2 {
		return nil, fmt.Errorf("AI service returned %d values, want 2", len(result.Data))
	}

	return &model.FeedbackResult{
		Transcript: result.Data[0],
		Feedback:   result.Data[1],
	}, nil
}
