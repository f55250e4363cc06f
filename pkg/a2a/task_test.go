package a2a

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskFromRequest(t *testing.T) {
	body := []byte(`{
		"id": "task1",
		"contextId": "ctx1",
		"history": [
			{"role": "user", "parts": [
				{"kind": "text", "text": "hello"},
				{"kind": "data", "data": {"sector": "energy"}}
			]}
		]
	}`)

	task, err := NewTaskFromRequest(body)
	require.NoError(t, err)
	assert.Equal(t, "task1", task.ID)
	assert.Equal(t, "ctx1", task.ContextID)
	require.Len(t, task.History, 1)
	require.Len(t, task.History[0].Parts, 2)
	assert.Equal(t, PartKindText, task.History[0].Parts[0].Kind)
	assert.Equal(t, "hello", task.History[0].Parts[0].Text)
	assert.Equal(t, PartKindData, task.History[0].Parts[1].Kind)
	assert.Equal(t, "energy", task.History[0].Parts[1].Data["sector"])
}

func TestNewTaskFromRequestInvalid(t *testing.T) {
	_, err := NewTaskFromRequest([]byte("not json"))
	assert.Error(t, err)
}

func TestToStatusSetsUTCTimestamp(t *testing.T) {
	task := &Task{ID: "task1"}
	task.ToStatus(TaskStateCompleted, NewTextMessage("agent", "done"))

	assert.Equal(t, TaskStateCompleted, task.Status.State)
	require.NotNil(t, task.Status.Message)
	assert.WithinDuration(t, time.Now().UTC(), task.Status.Timestamp, time.Second)

	raw, err := json.Marshal(task.Status)
	require.NoError(t, err)
	// RFC 3339 in UTC, i.e. a Z suffix on the wire
	assert.Contains(t, string(raw), `"timestamp":"`)
	assert.Contains(t, string(raw), `Z"`)
}

func TestLatestUserMessage(t *testing.T) {
	task := &Task{
		History: []Message{
			*NewTextMessage("user", "first"),
			*NewTextMessage("agent", "reply"),
			*NewTextMessage("user", "second"),
			*NewTextMessage("agent", "another reply"),
		},
	}

	msg := task.LatestUserMessage()
	require.NotNil(t, msg)
	assert.Equal(t, "second", msg.String())

	assert.Nil(t, (&Task{}).LatestUserMessage())
}

func TestAddArtifact(t *testing.T) {
	task := &Task{ID: "task1"}
	task.AddArtifact(NewArtifact("Market Summary", "test", NewTextPart("s")))

	require.Len(t, task.Artifacts, 1)
	assert.Equal(t, "Market Summary", *task.Artifacts[0].Name)
	assert.NotEmpty(t, task.Artifacts[0].ArtifactID)
}

func TestPartUnionMarshalling(t *testing.T) {
	raw, err := json.Marshal(NewDataPart(map[string]any{"tags": []string{"a"}}))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"kind":"data"`))
	assert.False(t, strings.Contains(string(raw), `"text"`))
}
