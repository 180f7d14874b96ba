package questionnaire

import "strings"

// defaultFriendlyMessage is shown when no known phrase matches.
const defaultFriendlyMessage = "Failed to generate career recommendations. Please try again."

// FriendlyMessage maps a submission error to a human-readable message by
// matching known phrases in the error text.
func FriendlyMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key not configured"):
		return "API key not configured. Please set OPENROUTER_API_KEY on the server."
	case strings.Contains(msg, "Invalid API key"):
		return "Invalid API key. Please check the OPENROUTER_API_KEY configuration."
	case strings.Contains(msg, "Insufficient credits"):
		return "Insufficient credits. Please add credits to your OpenRouter account."
	case strings.Contains(msg, "Rate limit exceeded"):
		return "Rate limit exceeded. Please wait a moment and try again."
	case strings.Contains(msg, "Failed to parse"):
		return "AI response parsing error. Please try again."
	case msg != "":
		return "Error: " + msg
	default:
		return defaultFriendlyMessage
	}
}
