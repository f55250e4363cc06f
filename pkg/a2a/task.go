package a2a

import (
	"encoding/json"
	"time"
)

type Task struct {
	ID        string         `json:"id"`
	ContextID string         `json:"contextId,omitempty"`
	Kind      string         `json:"kind,omitempty"` // always "task" once handled
	Status    TaskStatus     `json:"status"`
	History   []Message      `json:"history,omitempty"`
	Artifacts []Artifact     `json:"artifacts,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

func NewTaskFromRequest(body []byte) (*Task, error) {
	var task Task
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ToStatus moves the task to the given state, attaching the status message
// and a fresh UTC timestamp.
func (task *Task) ToStatus(state TaskState, message *Message) {
	task.Status.State = state
	task.Status.Message = message
	task.Status.Timestamp = time.Now().UTC()
}

// LatestUserMessage returns the most recent user-role message, or nil when
// the history holds none.
func (task *Task) LatestUserMessage() *Message {
	for i := len(task.History) - 1; i >= 0; i-- {
		if task.History[i].Role == "user" {
			return &task.History[i]
		}
	}

	return nil
}

func (task *Task) AddArtifact(artifact Artifact) {
	task.Artifacts = append(task.Artifacts, artifact)
}
