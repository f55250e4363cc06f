package a2a

import (
	"strings"

	"github.com/google/uuid"
)

/*
Message represents all non‑artifact communication between client & agent.
*/
type Message struct {
	Role      string         `json:"role"` // "user" or "agent"
	Parts     []Part         `json:"parts"`
	MessageID string         `json:"messageId,omitempty"`
	Kind      string         `json:"kind,omitempty"` // always "message"
	TaskID    string         `json:"taskId,omitempty"`
	ContextID string         `json:"contextId,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

func NewTextMessage(role string, text string) *Message {
	return &Message{
		Role:      role,
		Parts:     []Part{NewTextPart(text)},
		MessageID: uuid.NewString(),
		Kind:      "message",
	}
}

// NewAgentMessage builds an agent-role message linked back to the task it
// belongs to.
func NewAgentMessage(task *Task, parts ...Part) *Message {
	return &Message{
		Role:      "agent",
		Parts:     parts,
		MessageID: uuid.NewString(),
		Kind:      "message",
		TaskID:    task.ID,
		ContextID: task.ContextID,
	}
}

func (msg *Message) String() string {
	var sb strings.Builder

	for _, part := range msg.Parts {
		sb.WriteString(part.Text)
	}

	return sb.String()
}
