package analysis

import (
	"fmt"
	"strings"
)

// Prompt defaults applied for absent fields. Note the summary length here
// differs from the one the extractor applies when a data part is present
// but omits summaryLength; both values are deliberate.
const (
	defaultSector       = "technology sector"
	defaultFocus        = "overall outlook"
	defaultRisks        = "market uncertainty"
	defaultPromptLength = 150
)

// BuildPrompt maps the extracted input onto a single natural-language
// instruction string. Pure function.
func BuildPrompt(input Input) string {
	sector := input.Sector
	if sector == "" {
		sector = defaultSector
	}

	focus := input.Focus
	if focus == "" {
		focus = defaultFocus
	}

	length := input.SummaryLength
	if length == 0 {
		length = defaultPromptLength
	}

	risks := defaultRisks
	if len(input.RiskFactors) > 0 {
		risks = strings.Join(input.RiskFactors, ", ")
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "Knowing the user request: %s. ", input.UserContext)
	fmt.Fprintf(&sb, "Write a concise, coherent, and natural-sounding market summary (about %d words) for the %s sector. ", length, sector)
	fmt.Fprintf(&sb, "Focus on %s. Discuss key trends, opportunities, and threats in a single paragraph. ", focus)
	sb.WriteString("If the user request has the intention of making a trade but did not specify which stock or company, ")
	sb.WriteString("then the summary should name out what is the company that matches user description for investment. ")
	sb.WriteString("Do NOT include a title, bullet points, or any formatting—write in natural English prose only. ")
	fmt.Fprintf(&sb, "Consider risk factors such as: %s.", risks)

	if input.ExtraContext != "" {
		fmt.Fprintf(&sb, " Here is more context: %s.", input.ExtraContext)
	}

	return sb.String()
}
