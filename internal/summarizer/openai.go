package summarizer

import (
	"context"
	"strings"

	oa "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI is the alternate provider, selected with SUMMARIZER_PROVIDER=openai.
type OpenAI struct {
	cli   oa.Client
	model oa.ChatModel
}

func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = "gpt-4"
	}
	client := oa.NewClient(option.WithAPIKey(apiKey))
	return &OpenAI{cli: client, model: oa.ChatModel(model)}
}

func (s *OpenAI) Summarize(ctx context.Context, videoURL string) (string, error) {
	resp, err := s.cli.Chat.Completions.New(ctx, oa.ChatCompletionNewParams{
		Model: s.model,
		Messages: []oa.ChatCompletionMessageParamUnion{
			oa.UserMessage(BuildPrompt(videoURL)),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return FallbackSummary, nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
