package provider

import "context"

/*
TextGenerator abstracts the hosted text-completion capability.  The analysis
pipeline depends only on this interface so the model integration can be
swapped out or mocked in tests.
*/
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
