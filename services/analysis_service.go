package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/suportelm/nutri-ai-vision-scan-17/utils"

	"github.com/tidwall/gjson"
)

type DetectedFood struct {
	Name       string  `json:"name"`
	Portion    string  `json:"portion"`
	Confidence float64 `json:"confidence"`
}

type NutritionEstimate struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// AnalysisResult is the contract the parser must recover from the model's
// free-text reply. Values are returned exactly as the model reported them;
// confidence is self-reported and the user edits everything before saving.
type AnalysisResult struct {
	Foods           []DetectedFood    `json:"foods"`
	Nutrition       NutritionEstimate `json:"nutrition"`
	Recommendations []string          `json:"recommendations"`
}

// AnalysisService turns one base64-encoded meal photo into a structured
// nutrition estimate, or fails with a classified error. Stateless per call;
// every failure is terminal and retrying is the caller's decision.
type AnalysisService struct {
	apiKey        string
	maxEncodedLen int
	client        CompletionClient
}

func NewAnalysisService(apiKey string, maxEncodedLen int, client CompletionClient) *AnalysisService {
	return &AnalysisService{apiKey: apiKey, maxEncodedLen: maxEncodedLen, client: client}
}

func (s *AnalysisService) AnalyzeImage(ctx context.Context, imageBase64 string) (*AnalysisResult, error) {
	// Cheap gates first: reject before spending a paid API call.
	if imageBase64 == "" {
		return nil, newAnalysisError(CodeMissingInput, "image_base64 is empty")
	}
	if len(imageBase64) > s.maxEncodedLen {
		return nil, newAnalysisError(CodePayloadTooLarge, "encoded image exceeds limit")
	}
	if err := s.checkCredential(); err != nil {
		return nil, err
	}

	reply, err := s.client.Complete(ctx, imageBase64)
	if err != nil {
		return nil, AsAnalysisError(err)
	}

	raw, ok := utils.ExtractJSONObject(reply)
	if !ok {
		return nil, newAnalysisError(CodeUnparsableResponse, "no JSON object in reply: "+truncate(reply, 500))
	}

	var result AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, newAnalysisError(CodeMalformedJSON, "invalid JSON in reply: "+err.Error())
	}

	for _, key := range []string{"foods", "nutrition", "recommendations"} {
		if !gjson.Get(raw, key).Exists() {
			return nil, newAnalysisError(CodeIncompleteResult, "reply is missing key "+key)
		}
	}

	return &result, nil
}

// The key is validated structurally only; a well-formed but revoked key still
// surfaces later as an upstream auth failure.
func (s *AnalysisService) checkCredential() *AnalysisError {
	switch {
	case s.apiKey == "":
		return newAnalysisError(CodeMisconfiguredCredential, "OPENAI_API_KEY not set")
	case !strings.HasPrefix(s.apiKey, "sk-"):
		return newAnalysisError(CodeMisconfiguredCredential, "credential missing expected prefix")
	case len(s.apiKey) < 20:
		return newAnalysisError(CodeMisconfiguredCredential, "credential too short to be plausible")
	}
	return nil
}
