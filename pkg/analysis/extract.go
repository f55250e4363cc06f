package analysis

import (
	"github.com/charmbracelet/log"

	"github.com/advisory-trading/market-analysis-agent/pkg/a2a"
)

/*
Input is the ephemeral bag of fields pulled from the latest user message.
A failed extraction is reported through Err rather than an error return;
the prompt builder simply falls back to its own defaults in that case.
*/
type Input struct {
	Err           string
	UserContext   string
	Sector        string
	Focus         string
	RiskFactors   []string
	SummaryLength int
	ExtraContext  string
}

// ExtractUserInput scans the parts of the most recent user message in
// order. Later parts of the same kind overwrite earlier ones.
func ExtractUserInput(task *a2a.Task) Input {
	var input Input

	if task == nil || len(task.History) == 0 {
		log.Debug("no task or history found")
		input.Err = "No task or history found"
		return input
	}

	latest := task.LatestUserMessage()

	if latest == nil {
		log.Debug("no user messages found")
		input.Err = "No user messages found"
		return input
	}

	for _, part := range latest.Parts {
		switch part.Kind {
		case a2a.PartKindText:
			input.UserContext = part.Text
		case a2a.PartKindData:
			if len(part.Data) == 0 {
				continue
			}

			input.Sector = stringField(part.Data, "sector", "UNKNOWN_SECTOR")
			input.Focus = stringField(part.Data, "focus", "UNKNOWN_FOCUS")
			input.RiskFactors = stringSliceField(part.Data, "riskFactors")
			input.SummaryLength = intField(part.Data, "summaryLength", 200)

			if extra, ok := part.Data["extraContext"].(string); ok {
				input.ExtraContext = extra
			}
		}
	}

	return input
}

func stringField(data map[string]any, key string, fallback string) string {
	if value, ok := data[key].(string); ok {
		return value
	}
	return fallback
}

// intField accepts float64 because that is what encoding/json produces for
// numbers inside a map[string]any.
func intField(data map[string]any, key string, fallback int) int {
	switch value := data[key].(type) {
	case float64:
		return int(value)
	case int:
		return value
	}
	return fallback
}

func stringSliceField(data map[string]any, key string) []string {
	switch value := data[key].(type) {
	case []string:
		// tasks built in-process carry typed slices
		return value
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
