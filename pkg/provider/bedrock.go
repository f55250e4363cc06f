package provider

import (
	"context"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/charmbracelet/log"
)

const systemPrompt = "You are a financial analyst. Provide clear, insightful market summaries. " +
	"Answer the questions to the best of your model training data."

/*
BedrockProvider generates text with Anthropic models hosted on AWS Bedrock.
The client is initialized once at construction and reused across requests.
*/
type BedrockProvider struct {
	client    *anthropic.Client
	model     string
	region    string
	maxTokens int64
	system    string
}

type BedrockProviderOption func(*BedrockProvider)

func NewBedrockProvider(ctx context.Context, options ...BedrockProviderOption) *BedrockProvider {
	prvdr := &BedrockProvider{
		model:     "us.anthropic.claude-3-5-haiku-20241022-v1:0",
		region:    "us-east-1",
		maxTokens: 600,
		system:    systemPrompt,
	}

	for _, option := range options {
		option(prvdr)
	}

	if prvdr.client == nil {
		client := anthropic.NewClient(
			bedrock.WithLoadDefaultConfig(ctx, config.WithRegion(prvdr.region)),
		)
		prvdr.client = &client
	}

	return prvdr
}

func (prvdr *BedrockProvider) Generate(
	ctx context.Context, prompt string,
) (string, error) {
	log.Debug("bedrock generate", "model", prvdr.model, "prompt_length", len(prompt))

	message, err := prvdr.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(prvdr.model),
		MaxTokens: prvdr.maxTokens,
		System: []anthropic.TextBlockParam{{
			Text: prvdr.system,
		}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})

	if err != nil {
		return "", err
	}

	var sb strings.Builder

	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}

	return sb.String(), nil
}

func WithModel(model string) BedrockProviderOption {
	return func(prvdr *BedrockProvider) {
		prvdr.model = model
	}
}

func WithRegion(region string) BedrockProviderOption {
	return func(prvdr *BedrockProvider) {
		prvdr.region = region
	}
}

func WithMaxTokens(maxTokens int64) BedrockProviderOption {
	return func(prvdr *BedrockProvider) {
		prvdr.maxTokens = maxTokens
	}
}

func WithSystemPrompt(system string) BedrockProviderOption {
	return func(prvdr *BedrockProvider) {
		prvdr.system = system
	}
}

func WithClient(client *anthropic.Client) BedrockProviderOption {
	return func(prvdr *BedrockProvider) {
		prvdr.client = client
	}
}
