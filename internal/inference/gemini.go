package inference

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/assistant"
)

const DefaultModelName = "gemini-1.5-flash-latest"

// responseTemperature keeps clinical answers close to the source material.
const responseTemperature = float32(0.1)

// GeminiClient implements the assistant inference boundary on top of the
// Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = DefaultModelName
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// Generate sends the conversation context and the new input to Gemini and
// maps the response onto the assistant boundary types. An empty candidate
// set is a success with empty text; the orchestrator substitutes its
// fallback string.
func (c *GeminiClient) Generate(ctx context.Context, req assistant.Request) (*assistant.Result, error) {
	model := c.client.GenerativeModel(c.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(req.SystemInstruction)},
	}
	temp := responseTemperature
	model.GenerationConfig = genai.GenerationConfig{Temperature: &temp}

	chat := model.StartChat()
	chat.History = historyToContents(req.History)

	resp, err := chat.SendMessage(ctx, genai.Text(req.Input))
	if err != nil {
		return nil, fmt.Errorf("gemini SendMessage failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return &assistant.Result{}, nil
	}

	candidate := resp.Candidates[0]
	result := &assistant.Result{
		Citations: citationsFromCandidate(candidate),
	}
	if candidate.Content != nil {
		var text strings.Builder
		for _, part := range candidate.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text.WriteString(string(txt))
			}
		}
		result.Text = text.String()
	}
	return result, nil
}

// historyToContents maps prior exchanges onto Gemini chat history. The API
// only understands "user" and "model" roles.
func historyToContents(history []assistant.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := "user"
		if turn.Role == assistant.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return contents
}

func citationsFromCandidate(candidate *genai.Candidate) []assistant.Citation {
	if candidate == nil || candidate.CitationMetadata == nil {
		return nil
	}
	citations := make([]assistant.Citation, 0, len(candidate.CitationMetadata.CitationSources))
	for _, src := range candidate.CitationMetadata.CitationSources {
		if src == nil || src.URI == nil || *src.URI == "" {
			continue
		}
		citations = append(citations, assistant.Citation{
			Label: citationLabel(*src.URI),
			URI:   *src.URI,
		})
	}
	return citations
}

// citationLabel derives a display label from a source URI; the Gemini
// citation payload carries no title.
func citationLabel(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Host == "" {
		return uri
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
