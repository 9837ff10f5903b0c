package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient talks to Gemini with a caller-supplied key. A client is
// opened per call because keys belong to individual users.
type GeminiClient struct {
	apiKey string
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiClient{apiKey: apiKey, model: model}, nil
}

func (g *GeminiClient) Complete(ctx context.Context, system string, messages []Message, opts Options) (string, error) {
	if len(messages) == 0 {
		return "", ErrNoMessages
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}
	model.SetTemperature(opts.Temperature)
	if opts.JSON {
		model.ResponseMIMEType = "application/json"
	}

	cs := model.StartChat()
	last := messages[len(messages)-1]
	for _, m := range messages[:len(messages)-1] {
		cs.History = append(cs.History, &genai.Content{
			Role:  geminiRole(m.Role),
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", fmt.Errorf("gemini send: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", ErrEmptyCompletion
	}
	return out, nil
}

func geminiRole(role string) string {
	if role == RoleAssistant {
		return "model"
	}
	return "user"
}
