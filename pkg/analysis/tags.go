package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

/*
TagResult holds the normalized tag/sentiment output of the second model
call. It is always well-formed: parsing and invocation failures degrade to
an empty tag list and an "unknown" sentiment, never an error.
*/
type TagResult struct {
	Tags      []string `json:"tags"`
	Sentiment string   `json:"sentiment"`
}

func defaultTagResult() TagResult {
	return TagResult{Tags: []string{}, Sentiment: "unknown"}
}

const tagPrompt = "Analyze the following market summary and return exactly 4-7 key themes as a list of 'tags', " +
	"and the overall sentiment (positive, neutral, or negative) for investors. " +
	"Respond with nothing except a single JSON object with this format:\n" +
	"{\"tags\": [\"tag1\", \"tag2\", \"tag3\"], \"sentiment\": \"positive\"}\n" +
	"No title. No explanation. No extra text.\n\n" +
	"Summary:\n\"%s\""

// ExtractTags asks the model to classify the summary. All failures are
// swallowed here so the caller always receives a usable result.
func (a *Analyzer) ExtractTags(ctx context.Context, summary string) TagResult {
	response, err := a.model.Generate(ctx, fmt.Sprintf(tagPrompt, summary))

	if err != nil {
		log.Warn("tag extraction model call failed", "error", err)
		return defaultTagResult()
	}

	return parseTagResponse(response)
}

// parseTagResponse applies the parsing policy: direct JSON first, then the
// first brace-delimited object found in the response, then the default.
func parseTagResponse(response string) TagResult {
	parsed := map[string]any{}

	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		candidate, ok := firstJSONObject(response)

		if !ok || json.Unmarshal([]byte(candidate), &parsed) != nil {
			return defaultTagResult()
		}
	}

	return normalizeTagResult(parsed)
}

// firstJSONObject returns the first balanced {...} substring, counting
// brace depth so nested objects survive extraction intact.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	var (
		depth    int
		inString bool
		escaped  bool
	)

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

func normalizeTagResult(parsed map[string]any) TagResult {
	result := defaultTagResult()

	switch tags := parsed["tags"].(type) {
	case []any:
		for _, tag := range tags {
			if s, ok := tag.(string); ok {
				result.Tags = append(result.Tags, s)
			} else {
				result.Tags = append(result.Tags, fmt.Sprintf("%v", tag))
			}
		}
	case string:
		if tags != "" {
			result.Tags = []string{tags}
		}
	case float64:
		if tags != 0 {
			result.Tags = []string{strconv.FormatFloat(tags, 'f', -1, 64)}
		}
	case bool:
		if tags {
			result.Tags = []string{"true"}
		}
	}

	switch sentiment := parsed["sentiment"].(type) {
	case string:
		result.Sentiment = sentiment
	case nil:
		// absent or null: keep "unknown"
	default:
		result.Sentiment = fmt.Sprintf("%v", sentiment)
	}

	return result
}
