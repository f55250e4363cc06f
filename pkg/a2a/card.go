package a2a

import "fmt"

// AgentEndpoints lists the invocable HTTP endpoints published by the agent.
type AgentEndpoints struct {
	// Send is the fully-qualified URL of the tasks/send endpoint
	Send string `json:"send"`
}

// AgentMetadata carries model and runtime details for card consumers.
type AgentMetadata struct {
	// Streaming indicates if the agent supports streaming responses
	Streaming bool `json:"streaming"`
	// ModelID is the identifier of the hosted model backing the agent
	ModelID string `json:"modelId"`
	// Region is the cloud region the model is served from
	Region string `json:"region"`
	// Provider names the managed model provider
	Provider string `json:"provider"`
}

// AgentCard is the capability descriptor served on the discovery endpoint.
// It is a pure function of the request domain and the runtime config.
type AgentCard struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Protocol    string         `json:"protocol"`
	Skills      []string       `json:"skills"`
	Endpoints   AgentEndpoints `json:"endpoints"`
	Metadata    AgentMetadata  `json:"metadata"`
}

func NewAgentCard(domain string, modelID string, region string) *AgentCard {
	return &AgentCard{
		ID:          "market-analysis-agent",
		Name:        "MarketAnalysisAgent",
		Description: "Provides market analysis summaries and sentiment insights via Bedrock.",
		Protocol:    "A2A/1.0",
		Skills:      []string{"MarketSummary"},
		Endpoints: AgentEndpoints{
			Send: fmt.Sprintf("https://%s/tasks/send", domain),
		},
		Metadata: AgentMetadata{
			Streaming: true,
			ModelID:   modelID,
			Region:    region,
			Provider:  "Bedrock/Anthropic",
		},
	}
}
