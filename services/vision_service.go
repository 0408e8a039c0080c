package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/VibhourSharma/prescript-ease/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// analysisPrompt instructs the model to answer with the exact JSON shape the
// client renders. Anything else is treated as a failed analysis.
const analysisPrompt = `You are a medical prescription analyzer. Extract structured data from the prescription image and respond with ONLY a JSON object of this exact shape:
{"medicines":[{"name":"","dosage":"","frequency":"","duration":"","notes":"","details":{"purpose":"","sideEffects":"","warnings":"","alternatives":[""]}}],"estimatedDiagnosis":"","accuracy":0,"issues":[""],"rawText":""}
accuracy is a number from 0 to 100. rawText is the full text visible on the prescription. Do not add any commentary.`

type VisionService struct {
	httpClient *resty.Client
	model      string
	logger     *zap.Logger
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// visionPayload mirrors the JSON the model is asked to produce; every field
// is optional and defaulted afterwards.
type visionPayload struct {
	Medicines          []models.Medicine `json:"medicines"`
	EstimatedDiagnosis string            `json:"estimatedDiagnosis"`
	Accuracy           float64           `json:"accuracy"`
	Issues             []string          `json:"issues"`
	RawText            string            `json:"rawText"`
}

func NewVisionService(logger *zap.Logger) *VisionService {
	client := resty.New().
		SetBaseURL(os.Getenv("VISION_API_URL")).
		SetAuthToken(os.Getenv("VISION_API_KEY")).
		SetTimeout(60 * time.Second).
		SetHeader("Content-Type", "application/json")

	model := os.Getenv("VISION_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &VisionService{httpClient: client, model: model, logger: logger}
}

// AnalyzeImage sends one chat/completion request for the uploaded image and
// reshapes the answer into PrescriptionData. The request is not retried; any
// failure is terminal for this upload.
func (s *VisionService) AnalyzeImage(image []byte, contentType string) (*models.PrescriptionData, error) {
	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(image))

	request := chatRequest{
		Model: s.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: analysisPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURI}},
			},
		}},
	}

	var response chatResponse
	resp, err := s.httpClient.R().
		SetBody(request).
		SetResult(&response).
		Post("/chat/completions")
	if err != nil {
		s.logger.Error("Vision API call failed", zap.Error(err))
		return nil, fmt.Errorf("failed to call vision API: %w", err)
	}
	if resp.IsError() {
		s.logger.Error("Vision API returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return nil, fmt.Errorf("vision API error %d", resp.StatusCode())
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("vision API returned no choices")
	}

	payload, err := parseVisionContent(response.Choices[0].Message.Content)
	if err != nil {
		s.logger.Error("Failed to parse vision response", zap.Error(err))
		return nil, err
	}

	data := &models.PrescriptionData{
		Medicines: payload.Medicines,
		Diagnosis: payload.EstimatedDiagnosis,
		Accuracy:  payload.Accuracy,
		Issues:    payload.Issues,
		RawText:   payload.RawText,
	}
	data.ApplyDefaults()

	s.logger.Info("Prescription analyzed",
		zap.Int("medicines", len(data.Medicines)),
		zap.Float64("accuracy", data.Accuracy),
	)
	return data, nil
}

// parseVisionContent strips markdown code fences the model tends to wrap its
// answer in, then parses the JSON. Malformed JSON is a fatal error for the
// request.
func parseVisionContent(content string) (*visionPayload, error) {
	text := strings.TrimSpace(content)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var payload visionPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}
	return &payload, nil
}
