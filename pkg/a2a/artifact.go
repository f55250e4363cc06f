package a2a

import "github.com/google/uuid"

/*
Artifact is the output of a task.
*/
type Artifact struct {
	ArtifactID  string         `json:"artifactId"`
	Parts       []Part         `json:"parts"`
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

func NewArtifact(name string, description string, parts ...Part) Artifact {
	return Artifact{
		ArtifactID:  uuid.NewString(),
		Parts:       parts,
		Name:        &name,
		Description: &description,
	}
}
