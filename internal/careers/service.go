package careers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"pathfinder-backend/internal/llm"
	"pathfinder-backend/internal/shared/metrics"
	"pathfinder-backend/internal/shared/telemetry"
)

// Service turns a questionnaire submission into a career recommendation.
// Stateless and reentrant: each Analyze call is independent and issues
// exactly one outbound provider request.
type Service struct {
	LLM    llm.Client
	APIKey string
}

// Analyze runs the full pipeline: credential check, prompt build, one
// provider call, JSON extraction, and a shallow shape-check. On success the
// extracted JSON is returned verbatim; every failure is a *ServiceError.
func (s *Service) Analyze(ctx context.Context, responses UserResponses) (json.RawMessage, *ServiceError) {
	start := time.Now()
	metrics.IncRecommendationStarted()

	telemetry.Info("careers.analyze.received", map[string]any{
		"thinking_styles":   len(responses.ThinkingStyles),
		"interests":         len(responses.Interests),
		"skills":            len(responses.Skills),
		"work_environments": len(responses.WorkEnvironments),
		"priorities":        len(responses.Priorities),
	})

	// Fail fast before burning a network round trip.
	if strings.TrimSpace(s.APIKey) == "" {
		telemetry.Error("careers.analyze.no_credential", nil)
		metrics.IncRecommendationFailed()
		return nil, errConfiguration()
	}

	prompt := BuildAnalysisPrompt(responses)
	telemetry.Info("careers.analyze.prompt_built", map[string]any{"prompt_len": len(prompt)})

	telemetry.Info("careers.analyze.calling_provider", nil)
	content, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		metrics.IncRecommendationFailed()
		return nil, classifyProviderError(err)
	}
	telemetry.Info("careers.analyze.provider_response", map[string]any{"content_len": len(content)})

	parsed, err := extractJSON(content)
	if err != nil {
		telemetry.Error("careers.analyze.parse_failed", map[string]any{"excerpt": excerpt(content)})
		metrics.IncRecommendationFailed()
		return nil, errResponseParse(excerpt(content))
	}

	if serr := shapeCheck(parsed); serr != nil {
		metrics.IncRecommendationFailed()
		return nil, serr
	}

	telemetry.Info("careers.analyze.completed", map[string]any{
		"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	})
	metrics.IncRecommendationCompleted()
	metrics.ObserveRecommendationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return parsed, nil
}

// classifyProviderError maps transport failures onto the error taxonomy.
func classifyProviderError(err error) *ServiceError {
	if se, ok := llm.AsStatusError(err); ok {
		telemetry.Error("careers.analyze.provider_error", map[string]any{
			"status":  se.StatusCode,
			"message": se.Message,
		})
		switch se.StatusCode {
		case 401:
			return errAuthentication()
		case 402:
			return errQuota()
		case 429:
			return errRateLimit()
		default:
			return errUpstream(se.StatusCode, se.Message)
		}
	}
	if errors.Is(err, llm.ErrEmptyContent) {
		telemetry.Error("careers.analyze.upstream_shape", nil)
		return errUpstreamShape()
	}
	telemetry.Error("careers.analyze.unexpected", map[string]any{"error": err.Error()})
	return errUnexpected(err)
}

// shapeCheck verifies the parsed object has truthy primaryCareers and
// explanation fields. No deeper validation happens here; per-career field
// presence is the presenter's concern.
func shapeCheck(raw json.RawMessage) *ServiceError {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return errResponseParse(excerpt(string(raw)))
	}
	if !truthy(obj["primaryCareers"]) || !truthy(obj["explanation"]) {
		telemetry.Error("careers.analyze.incomplete_result", map[string]any{
			"has_primary_careers": truthy(obj["primaryCareers"]),
			"has_explanation":     truthy(obj["explanation"]),
		})
		return errIncompleteResult()
	}
	return nil
}

// truthy mirrors loose truthiness: absent, null, false, zero, and empty
// string are falsy; everything else, including an empty array, is truthy.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	default:
		return true
	}
}
