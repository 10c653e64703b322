package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitguide/fitness-app/internal/config"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const defaultTimeout = 20 * time.Second

// GeminiGenerator calls the Gemini API through the genai SDK.
type GeminiGenerator struct {
	client      *genai.Client
	textModel   string
	visionModel string
	timeout     time.Duration
}

// NewGeminiGenerator returns nil and ErrDisabled when no API key is configured.
func NewGeminiGenerator(ctx context.Context, cfg config.AIConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, ErrDisabled
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	log.Infof("gemini generator ready, text model: %s, vision model: %s", cfg.TextModel, cfg.VisionModel)

	return &GeminiGenerator{
		client:      client,
		textModel:   cfg.TextModel,
		visionModel: cfg.VisionModel,
		timeout:     timeout,
	}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := g.textModel
	if prompt.Image != nil {
		model = g.visionModel
	}

	genCfg := &genai.GenerateContentConfig{}
	if prompt.Temperature > 0 {
		genCfg.Temperature = genai.Ptr(prompt.Temperature)
	}
	if prompt.System != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(prompt.System, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, buildContents(prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("generate content with %s: %w", model, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}

func buildContents(prompt Prompt) []*genai.Content {
	contents := make([]*genai.Content, 0, len(prompt.History)+1)
	for _, turn := range prompt.History {
		role := genai.Role(genai.RoleUser)
		if turn.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Message, role))
	}

	if prompt.Text == "" && prompt.Image == nil {
		return contents
	}

	var parts []*genai.Part
	if prompt.Image != nil {
		parts = append(parts, genai.NewPartFromBytes(prompt.Image.Data, prompt.Image.MIMEType))
	}
	if prompt.Text != "" {
		parts = append(parts, genai.NewPartFromText(prompt.Text))
	}
	return append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
}
