package careers

import (
	"encoding/json"
	"errors"
	"strings"
)

// errNoJSON is returned when no parseable JSON object can be recovered from
// a model reply.
var errNoJSON = errors.New("no JSON object found in model reply")

const excerptLimit = 500

// extractJSON recovers a JSON object from a model reply.
//
// Models frequently wrap the object in prose or code fences despite being
// told not to. First attempt a strict parse of the whole reply; failing
// that, take the greedy span from the first '{' to the last '}' and parse
// that instead. The fallback is a heuristic, not a grammar: replies with
// multiple independent objects or unbalanced braces inside string literals
// that still fail to parse are reported as errNoJSON, never guessed at.
func extractJSON(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)
	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return json.RawMessage(trimmed), nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end < start {
		return nil, errNoJSON
	}

	candidate := trimmed[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, errNoJSON
	}
	return json.RawMessage(candidate), nil
}

// excerpt truncates raw model output for diagnostics.
func excerpt(raw string) string {
	if len(raw) <= excerptLimit {
		return raw
	}
	return raw[:excerptLimit]
}
