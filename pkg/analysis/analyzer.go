package analysis

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/advisory-trading/market-analysis-agent/pkg/a2a"
	"github.com/advisory-trading/market-analysis-agent/pkg/provider"
)

/*
Analyzer runs the market-analysis pipeline over a task: extract input,
build the prompt, generate the summary, classify it, and write the outcome
back onto the task. Every invocation ends in a terminal task state.
*/
type Analyzer struct {
	model provider.TextGenerator
}

func NewAnalyzer(model provider.TextGenerator) *Analyzer {
	return &Analyzer{model: model}
}

// Analyze mutates and returns the same task it was given – no new task is
// created on either path. Extraction failures degrade to prompt defaults;
// model failures move the task to the failed state.
func (a *Analyzer) Analyze(ctx context.Context, task *a2a.Task) *a2a.Task {
	input := ExtractUserInput(task)

	if input.Err != "" {
		log.Warn("input extraction incomplete, using prompt defaults",
			"task_id", task.ID, "reason", input.Err)
	}

	summary, err := a.model.Generate(ctx, BuildPrompt(input))

	if err != nil {
		return a.fail(task, err)
	}

	tags := a.ExtractTags(ctx, summary)

	task.ToStatus(a2a.TaskStateCompleted, a2a.NewAgentMessage(
		task, a2a.NewTextPart("Market summary successfully generated."),
	))
	task.AddArtifact(a2a.NewArtifact(
		"Market Summary",
		"Summary and tags generated by LLM",
		a2a.NewTextPart(summary),
		a2a.NewDataPart(map[string]any{
			"tags":      tags.Tags,
			"sentiment": tags.Sentiment,
		}),
	))
	task.Kind = "task"

	log.Info("market analysis completed", "task_id", task.ID,
		"tags", len(tags.Tags), "sentiment", tags.Sentiment)

	return task
}

// fail converts an error into the failed-task shape: one "Error" artifact
// and a status message both carrying the error text.
func (a *Analyzer) fail(task *a2a.Task, err error) *a2a.Task {
	log.Error("market analysis failed", "task_id", task.ID, "error", err)

	errPart := a2a.NewTextPart(err.Error())

	task.ToStatus(a2a.TaskStateFailed, a2a.NewAgentMessage(task, errPart))
	task.AddArtifact(a2a.NewArtifact(
		"Error",
		"Error encountered during market analysis",
		errPart,
	))
	task.Kind = "task"

	return task
}
