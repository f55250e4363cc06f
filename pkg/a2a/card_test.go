package a2a

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgentCardShape(t *testing.T) {
	card := NewAgentCard("agent.example.com", "model-x", "us-east-1")

	raw, err := json.Marshal(card)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{"id", "name", "description", "protocol", "skills", "endpoints", "metadata"} {
		assert.Contains(t, decoded, key)
	}
	assert.Len(t, decoded, 7)
}

func TestNewAgentCardContents(t *testing.T) {
	card := NewAgentCard("agent.example.com", "model-x", "eu-west-1")

	assert.Equal(t, "market-analysis-agent", card.ID)
	assert.Equal(t, "MarketAnalysisAgent", card.Name)
	assert.Equal(t, "A2A/1.0", card.Protocol)
	assert.Equal(t, []string{"MarketSummary"}, card.Skills)
	assert.Equal(t, "https://agent.example.com/tasks/send", card.Endpoints.Send)
	assert.True(t, strings.HasSuffix(card.Endpoints.Send, "/tasks/send"))
	assert.True(t, card.Metadata.Streaming)
	assert.Equal(t, "model-x", card.Metadata.ModelID)
	assert.Equal(t, "eu-west-1", card.Metadata.Region)
	assert.Equal(t, "Bedrock/Anthropic", card.Metadata.Provider)
}
