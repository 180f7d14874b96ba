package careers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"pathfinder-backend/internal/llm"
)

type stubLLM struct {
	content string
	err     error
	calls   int
	prompt  string
}

func (s *stubLLM) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func sampleResponses() UserResponses {
	return UserResponses{
		ThinkingStyles:   []string{"logical"},
		Interests:        []string{"tech"},
		Skills:           []string{"coding"},
		HasUniversity:    true,
		Degrees:          "Computer Science",
		EducationUse:     EducationUseCentral,
		WorkEnvironments: []string{"remote"},
		Priorities:       []string{"income"},
		WillingToRetrain: true,
	}
}

const minimalRecommendation = `{"primaryCareers":[{"title":"Data Analyst"}],"explanation":"Strong analytical profile."}`

func TestAnalyzeSuccessReturnsModelJSONVerbatim(t *testing.T) {
	stub := &stubLLM{content: minimalRecommendation}
	svc := &Service{LLM: stub, APIKey: "sk-or-test"}

	result, serr := svc.Analyze(context.Background(), sampleResponses())
	if serr != nil {
		t.Fatalf("unexpected error: %v", serr)
	}
	if string(result) != minimalRecommendation {
		t.Fatalf("expected verbatim passthrough, got %s", result)
	}
	if stub.calls != 1 {
		t.Fatalf("expected exactly one provider call, got %d", stub.calls)
	}
	if !strings.Contains(stub.prompt, "logical") || !strings.Contains(stub.prompt, "Computer Science") {
		t.Fatalf("expected user answers in prompt")
	}
}

func TestAnalyzeMissingCredentialFailsBeforeProviderCall(t *testing.T) {
	stub := &stubLLM{content: minimalRecommendation}
	svc := &Service{LLM: stub, APIKey: "  "}

	_, serr := svc.Analyze(context.Background(), sampleResponses())
	if serr == nil {
		t.Fatalf("expected configuration error")
	}
	if serr.Code != CodeConfiguration {
		t.Fatalf("expected %s, got %s", CodeConfiguration, serr.Code)
	}
	if serr.Status != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", serr.Status)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no provider call, got %d", stub.calls)
	}
}

func TestAnalyzeProviderStatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		upstream   int
		wantCode   string
		wantStatus int
	}{
		{name: "authentication", upstream: 401, wantCode: CodeAuthentication, wantStatus: 401},
		{name: "quota", upstream: 402, wantCode: CodeQuota, wantStatus: 402},
		{name: "rate limit", upstream: 429, wantCode: CodeRateLimit, wantStatus: 429},
		{name: "passthrough", upstream: 503, wantCode: CodeUpstream, wantStatus: 503},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubLLM{err: &llm.StatusError{StatusCode: tt.upstream, Message: "nope"}}
			svc := &Service{LLM: stub, APIKey: "sk-or-test"}

			_, serr := svc.Analyze(context.Background(), sampleResponses())
			if serr == nil {
				t.Fatalf("expected error")
			}
			if serr.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %s", tt.wantCode, serr.Code)
			}
			if serr.Status != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, serr.Status)
			}
		})
	}
}

func TestAnalyzeEmptyContentIsUpstreamShapeError(t *testing.T) {
	stub := &stubLLM{err: llm.ErrEmptyContent}
	svc := &Service{LLM: stub, APIKey: "sk-or-test"}

	_, serr := svc.Analyze(context.Background(), sampleResponses())
	if serr == nil || serr.Code != CodeUpstreamShape {
		t.Fatalf("expected upstream shape error, got %v", serr)
	}
	if serr.Status != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", serr.Status)
	}
}

func TestAnalyzeUnparseableReplyIsParseError(t *testing.T) {
	stub := &stubLLM{content: "I could not produce a recommendation today."}
	svc := &Service{LLM: stub, APIKey: "sk-or-test"}

	_, serr := svc.Analyze(context.Background(), sampleResponses())
	if serr == nil || serr.Code != CodeResponseParse {
		t.Fatalf("expected response parse error, got %v", serr)
	}
	if !strings.Contains(serr.Details, "could not produce") {
		t.Fatalf("expected raw excerpt in details, got %q", serr.Details)
	}
}

func TestAnalyzeProseWrappedReplyIsRecovered(t *testing.T) {
	stub := &stubLLM{content: "Here you go:\n" + minimalRecommendation + "\nEnjoy!"}
	svc := &Service{LLM: stub, APIKey: "sk-or-test"}

	result, serr := svc.Analyze(context.Background(), sampleResponses())
	if serr != nil {
		t.Fatalf("unexpected error: %v", serr)
	}
	if string(result) != minimalRecommendation {
		t.Fatalf("expected embedded object, got %s", result)
	}
}

func TestAnalyzeIncompleteResult(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing primaryCareers", content: `{"explanation":"text"}`},
		{name: "missing explanation", content: `{"primaryCareers":[{"title":"x"}]}`},
		{name: "null primaryCareers", content: `{"primaryCareers":null,"explanation":"text"}`},
		{name: "empty explanation", content: `{"primaryCareers":[{"title":"x"}],"explanation":""}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubLLM{content: tt.content}
			svc := &Service{LLM: stub, APIKey: "sk-or-test"}

			_, serr := svc.Analyze(context.Background(), sampleResponses())
			if serr == nil || serr.Code != CodeIncompleteResult {
				t.Fatalf("expected incomplete result error, got %v", serr)
			}
		})
	}
}

func TestAnalyzeEmptyPrimaryCareersArrayPasses(t *testing.T) {
	// An empty array is truthy under the shallow shape-check; deeper
	// validation is the presenter's concern.
	content := `{"primaryCareers":[],"explanation":"text"}`
	stub := &stubLLM{content: content}
	svc := &Service{LLM: stub, APIKey: "sk-or-test"}

	result, serr := svc.Analyze(context.Background(), sampleResponses())
	if serr != nil {
		t.Fatalf("unexpected error: %v", serr)
	}
	if string(result) != content {
		t.Fatalf("expected passthrough, got %s", result)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{name: "nil", v: nil, want: false},
		{name: "false", v: false, want: false},
		{name: "true", v: true, want: true},
		{name: "empty string", v: "", want: false},
		{name: "string", v: "x", want: true},
		{name: "zero", v: float64(0), want: false},
		{name: "number", v: float64(2), want: true},
		{name: "empty array", v: []any{}, want: true},
		{name: "object", v: map[string]any{}, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := truthy(tt.v); got != tt.want {
				t.Fatalf("truthy(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
