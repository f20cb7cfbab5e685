package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const visionSystemPrompt = `Você é um especialista em nutrição. Analise imagens de alimentos e forneça informações nutricionais detalhadas em português brasileiro.
Retorne APENAS uma resposta JSON válida com esta estrutura exata:
{
  "foods": [{"name": "nome do alimento", "portion": "porção estimada", "confidence": 0.85}],
  "nutrition": {"calories": 450, "protein": 25, "carbs": 45, "fat": 15, "fiber": 8, "sugar": 12},
  "recommendations": ["sugestão 1", "sugestão 2"]
}`

const visionUserPrompt = "Analise esta imagem de refeição e forneça informações nutricionais detalhadas em formato JSON válido."

// CompletionClient submits one image to the vision-language service and
// returns the raw text of its reply.
type CompletionClient interface {
	Complete(ctx context.Context, imageBase64 string) (string, error)
}

// VisionService talks to an OpenAI-compatible chat-completions endpoint.
type VisionService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	retry   RetryPolicy
}

func NewVisionService(apiKey, model, baseURL string, timeout time.Duration, retry RetryPolicy) *VisionService {
	return &VisionService{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		retry:   retry,
	}
}

type chatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *VisionService) Complete(ctx context.Context, imageBase64 string) (string, error) {
	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: visionSystemPrompt},
			{Role: "user", Content: []chatContentPart{
				{Type: "text", Text: visionUserPrompt},
				{Type: "image_url", ImageURL: &chatImageURL{
					URL: "data:image/jpeg;base64," + imageBase64,
				}},
			}},
		},
		MaxTokens:   1500,
		Temperature: 0.1,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion payload: %w", err)
	}

	var content string
	err = s.retry.Do(ctx, func() (bool, error) {
		c, retryable, err := s.attempt(ctx, body)
		content = c
		return retryable, err
	})
	return content, err
}

func (s *VisionService) attempt(ctx context.Context, body []byte) (content string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return "", true, newAnalysisError(CodeUpstreamError, "completion request timed out: "+err.Error())
		}
		return "", false, newAnalysisError(CodeUpstreamError, "completion request failed: "+err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, newAnalysisError(CodeUpstreamError, "failed to read completion response: "+err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		detail := fmt.Sprintf("status %d: %s", resp.StatusCode, truncate(string(raw), 500))
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return "", false, newAnalysisError(CodeUpstreamAuth, detail)
		case http.StatusTooManyRequests:
			return "", true, newAnalysisError(CodeUpstreamRateLimited, detail)
		case http.StatusRequestEntityTooLarge:
			return "", false, newAnalysisError(CodeUpstreamPayloadTooLarge, detail)
		default:
			return "", false, newAnalysisError(CodeUpstreamError, detail)
		}
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return "", false, newAnalysisError(CodeUpstreamError, "invalid completion envelope: "+err.Error())
	}
	if cr.Error != nil {
		return "", false, newAnalysisError(CodeUpstreamError, cr.Error.Message)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", false, newAnalysisError(CodeUpstreamError, "no completion content")
	}
	return cr.Choices[0].Message.Content, false, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
