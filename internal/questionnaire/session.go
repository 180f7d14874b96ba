package questionnaire

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"pathfinder-backend/internal/careers"
)

var (
	errNotFinalStep       = errors.New("submit is only available on the final step")
	errSubmissionInFlight = errors.New("a submission is already in flight")
)

// TotalSteps is the number of questionnaire steps.
const TotalSteps = 6

// Analyzer submits a completed answer set for analysis.
type Analyzer interface {
	AnalyzeCareer(ctx context.Context, responses careers.UserResponses) (*careers.CareerRecommendation, error)
}

// Session owns the multi-step form state for one questionnaire run.
// Single-owner, not safe for concurrent use.
type Session struct {
	ID        string
	Step      int
	Loading   bool
	Responses careers.UserResponses
	Result    *careers.CareerRecommendation
	// ErrMessage is the human-readable outcome of the last failed
	// submission, cleared on the next Submit.
	ErrMessage string
}

// NewSession starts a fresh questionnaire at step 1 with default answers.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		Step:      1,
		Responses: defaultResponses(),
	}
}

func defaultResponses() careers.UserResponses {
	return careers.UserResponses{
		ThinkingStyles:   []string{},
		Interests:        []string{},
		Skills:           []string{},
		WorkEnvironments: []string{},
		Priorities:       []string{},
		WillingToRetrain: true,
	}
}

// Next advances one step; no-op on the final step.
func (s *Session) Next() {
	if s.Step < TotalSteps {
		s.Step++
	}
}

// Back retreats one step; no-op on the first step.
func (s *Session) Back() {
	if s.Step > 1 {
		s.Step--
	}
}

// Toggle flips membership of id in the named multi-select category: absent
// ids are appended, present ids are removed. Unknown categories are ignored.
func (s *Session) Toggle(category Category, id string) {
	switch category {
	case CategoryThinkingStyles:
		s.Responses.ThinkingStyles = toggleValue(s.Responses.ThinkingStyles, id)
	case CategoryInterests:
		s.Responses.Interests = toggleValue(s.Responses.Interests, id)
	case CategorySkills:
		s.Responses.Skills = toggleValue(s.Responses.Skills, id)
	case CategoryWorkEnvironments:
		s.Responses.WorkEnvironments = toggleValue(s.Responses.WorkEnvironments, id)
	case CategoryPriorities:
		s.Responses.Priorities = toggleValue(s.Responses.Priorities, id)
	}
}

func toggleValue(values []string, id string) []string {
	for i, v := range values {
		if v == id {
			return append(values[:i:i], values[i+1:]...)
		}
	}
	return append(values, id)
}

// Done reports whether a recommendation has been received.
func (s *Session) Done() bool {
	return s.Result != nil
}

// Submit sends the answer set for analysis. Only reachable from the final
// step. The loading flag is cleared whatever the outcome; a failure sets
// ErrMessage to a friendly description instead of propagating the raw error.
func (s *Session) Submit(ctx context.Context, api Analyzer) error {
	if s.Step != TotalSteps {
		return errNotFinalStep
	}
	if s.Loading {
		return errSubmissionInFlight
	}

	s.Loading = true
	s.ErrMessage = ""
	defer func() { s.Loading = false }()

	result, err := api.AnalyzeCareer(ctx, s.Responses)
	if err != nil {
		s.ErrMessage = FriendlyMessage(err)
		return err
	}

	s.Result = result
	return nil
}

// Restart resets the session to step 1 with default answers and no result.
func (s *Session) Restart() {
	s.Step = 1
	s.Loading = false
	s.Result = nil
	s.ErrMessage = ""
	s.Responses = defaultResponses()
}
