package services

import (
	"context"
	"errors"
	"testing"
)

const testAPIKey = "sk-test-1234567890abcdef"

type fakeCompletionClient struct {
	reply string
	err   error
	calls int
}

func (f *fakeCompletionClient) Complete(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

const appleReply = "Here is the analysis:\n" +
	`{"foods":[{"name":"Apple","portion":"1 medium","confidence":0.9}],` +
	`"nutrition":{"calories":95,"protein":0,"carbs":25,"fat":0,"fiber":4,"sugar":19},` +
	`"recommendations":["Eat more fiber"]}` + "\nEnjoy!"

func analysisCode(t *testing.T, err error) AnalysisCode {
	t.Helper()
	var ae *AnalysisError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *AnalysisError, got %v", err)
	}
	return ae.Code
}

func TestAnalyzeImageMissingInput(t *testing.T) {
	client := &fakeCompletionClient{}
	svc := NewAnalysisService(testAPIKey, 100, client)

	_, err := svc.AnalyzeImage(context.Background(), "")
	if code := analysisCode(t, err); code != CodeMissingInput {
		t.Fatalf("code = %s, want %s", code, CodeMissingInput)
	}
	if client.calls != 0 {
		t.Fatalf("completion service called %d times, want 0", client.calls)
	}
}

func TestAnalyzeImageSizeGate(t *testing.T) {
	client := &fakeCompletionClient{}
	svc := NewAnalysisService(testAPIKey, 10, client)

	_, err := svc.AnalyzeImage(context.Background(), "aaaaaaaaaaaaaaaaaaaa")
	if code := analysisCode(t, err); code != CodePayloadTooLarge {
		t.Fatalf("code = %s, want %s", code, CodePayloadTooLarge)
	}
	if client.calls != 0 {
		t.Fatalf("completion service called %d times, want 0", client.calls)
	}
}

func TestAnalyzeImageCredentialGate(t *testing.T) {
	for _, key := range []string{"", "not-a-key", "sk-short"} {
		client := &fakeCompletionClient{reply: appleReply}
		svc := NewAnalysisService(key, 100, client)

		_, err := svc.AnalyzeImage(context.Background(), "aGVsbG8=")
		if code := analysisCode(t, err); code != CodeMisconfiguredCredential {
			t.Fatalf("key %q: code = %s, want %s", key, code, CodeMisconfiguredCredential)
		}
		if client.calls != 0 {
			t.Fatalf("key %q: completion service called %d times, want 0", key, client.calls)
		}
	}
}

func TestAnalyzeImageHappyPath(t *testing.T) {
	client := &fakeCompletionClient{reply: appleReply}
	svc := NewAnalysisService(testAPIKey, 100, client)

	result, err := svc.AnalyzeImage(context.Background(), "aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.calls != 1 {
		t.Fatalf("completion service called %d times, want 1", client.calls)
	}
	if len(result.Foods) != 1 || result.Foods[0].Name != "Apple" {
		t.Fatalf("foods = %+v, want one Apple", result.Foods)
	}
	if result.Foods[0].Portion != "1 medium" || result.Foods[0].Confidence != 0.9 {
		t.Fatalf("unexpected food details: %+v", result.Foods[0])
	}
	if result.Nutrition.Calories != 95 || result.Nutrition.Carbs != 25 || result.Nutrition.Sugar != 19 {
		t.Fatalf("unexpected nutrition: %+v", result.Nutrition)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0] != "Eat more fiber" {
		t.Fatalf("recommendations = %v", result.Recommendations)
	}
}

func TestAnalyzeImageProseOnlyReply(t *testing.T) {
	client := &fakeCompletionClient{reply: "Sorry, I could not identify any food in this image."}
	svc := NewAnalysisService(testAPIKey, 100, client)

	_, err := svc.AnalyzeImage(context.Background(), "aGVsbG8=")
	if code := analysisCode(t, err); code != CodeUnparsableResponse {
		t.Fatalf("code = %s, want %s", code, CodeUnparsableResponse)
	}
}

func TestAnalyzeImageMalformedJSON(t *testing.T) {
	client := &fakeCompletionClient{reply: `result: {"foods": [}`}
	svc := NewAnalysisService(testAPIKey, 100, client)

	_, err := svc.AnalyzeImage(context.Background(), "aGVsbG8=")
	if code := analysisCode(t, err); code != CodeMalformedJSON {
		t.Fatalf("code = %s, want %s", code, CodeMalformedJSON)
	}
}

func TestAnalyzeImageMissingFields(t *testing.T) {
	cases := map[string]string{
		"no recommendations": `{"foods":[],"nutrition":{"calories":100}}`,
		"no nutrition":       `{"foods":[],"recommendations":[]}`,
		"no foods":           `{"nutrition":{"calories":100},"recommendations":[]}`,
	}
	for name, reply := range cases {
		t.Run(name, func(t *testing.T) {
			client := &fakeCompletionClient{reply: reply}
			svc := NewAnalysisService(testAPIKey, 100, client)

			_, err := svc.AnalyzeImage(context.Background(), "aGVsbG8=")
			if code := analysisCode(t, err); code != CodeIncompleteResult {
				t.Fatalf("code = %s, want %s", code, CodeIncompleteResult)
			}
		})
	}
}

func TestAnalyzeImageClientFailurePassthrough(t *testing.T) {
	client := &fakeCompletionClient{err: newAnalysisError(CodeUpstreamAuth, "status 401")}
	svc := NewAnalysisService(testAPIKey, 100, client)

	_, err := svc.AnalyzeImage(context.Background(), "aGVsbG8=")
	if code := analysisCode(t, err); code != CodeUpstreamAuth {
		t.Fatalf("code = %s, want %s", code, CodeUpstreamAuth)
	}
}
