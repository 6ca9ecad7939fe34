package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/louisbranch/infinity.spark/internal/economy/archetype"
)

// HTTPGeneratorConfig configures the OpenAI-compatible responses endpoint.
type HTTPGeneratorConfig struct {
	ResponsesURL string
	APIKey       string
	Model        string
	HTTPClient   *http.Client
}

// HTTPGenerator produces content bundles through an OpenAI-compatible
// responses endpoint. Model output is strict JSON validated against the
// bundle schema before anything reaches the economy.
type HTTPGenerator struct {
	cfg HTTPGeneratorConfig
}

var _ Generator = (*HTTPGenerator)(nil)

// NewHTTPGenerator builds an HTTP generator with defaults applied.
func NewHTTPGenerator(cfg HTTPGeneratorConfig) *HTTPGenerator {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.ResponsesURL) == "" {
		cfg.ResponsesURL = "https://api.openai.com/v1/responses"
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return &HTTPGenerator{cfg: cfg}
}

const promptPreamble = `You generate interactive website worlds. Respond with a single JSON object
and nothing else. The object has keys: title (string), description (string),
content (HTML string), emoji (single emoji), theme (css color theme name),
tools (array of tool type strings). Valid tool types: video-player, chart,
gallery, timeline, map, dashboard, store, calculator, text-editor, calendar,
feed, chat, form, table, audio-player, code-editor, kanban, search, analytics,
content-hub, time-travel-lab, emotion-visualizer, world-trading.`

// GenerateWorldContent produces a bundle for a slot-originated world.
func (g *HTTPGenerator) GenerateWorldContent(ctx context.Context, def archetype.Definition, owner string, combination archetype.Combination) (Bundle, error) {
	prompt := fmt.Sprintf(
		"%s\n\nBuild the world %q (%s). Purpose: %s. Educational goal: %s.\nThe slot machine drew %s %s %s, a %q combination.\nSuggested tools: %s.\nCreator wallet: %s.",
		promptPreamble,
		def.Name,
		def.Emoji,
		def.Description,
		def.EducationalGoal,
		combination.Symbols[0], combination.Symbols[1], combination.Symbols[2],
		combination.Name,
		strings.Join(def.Tools, ", "),
		owner,
	)
	return g.generateBundle(ctx, prompt)
}

// GenerateWebsiteContent produces a bundle for a free-form query.
func (g *HTTPGenerator) GenerateWebsiteContent(ctx context.Context, query string, owner string) (Bundle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Bundle{}, fmt.Errorf("%w: query is required", ErrGenerationFailed)
	}
	prompt := fmt.Sprintf(
		"%s\n\nBuild a website world for the request: %q.\nPick tools that fit the request. Creator wallet: %s.",
		promptPreamble,
		query,
		owner,
	)
	return g.generateBundle(ctx, prompt)
}

// GeneratePageContent produces one additional page for an existing world.
func (g *HTTPGenerator) GeneratePageContent(ctx context.Context, worldTitle string, query string, author string) (PageBundle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return PageBundle{}, fmt.Errorf("%w: page query is required", ErrGenerationFailed)
	}
	prompt := fmt.Sprintf(
		"%s\n\nAdd one page to the existing world %q for the request: %q.\nRespond with keys title, content, tools only. Author wallet: %s.",
		promptPreamble,
		worldTitle,
		query,
		author,
	)
	raw, err := g.invoke(ctx, prompt)
	if err != nil {
		return PageBundle{}, err
	}
	if err := validateBundleJSON(raw); err != nil {
		return PageBundle{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	var page PageBundle
	if err := json.Unmarshal(raw, &page); err != nil {
		return PageBundle{}, fmt.Errorf("%w: decode page bundle: %v", ErrGenerationFailed, err)
	}
	return page, nil
}

func (g *HTTPGenerator) generateBundle(ctx context.Context, prompt string) (Bundle, error) {
	raw, err := g.invoke(ctx, prompt)
	if err != nil {
		return Bundle{}, err
	}
	if err := validateBundleJSON(raw); err != nil {
		return Bundle{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	var bundle Bundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return Bundle{}, fmt.Errorf("%w: decode bundle: %v", ErrGenerationFailed, err)
	}
	return bundle, nil
}

func (g *HTTPGenerator) invoke(ctx context.Context, prompt string) ([]byte, error) {
	apiKey := strings.TrimSpace(g.cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: api key is required", ErrGenerationFailed)
	}

	requestBody, err := json.Marshal(map[string]any{
		"model": g.cfg.Model,
		"input": prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrGenerationFailed, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.ResponsesURL, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Credential material travels only in the Authorization header and is
	// never echoed into errors.
	req.Header.Set("Authorization", "Bearer "+apiKey)

	res, err := g.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", ErrGenerationFailed, err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, readErr := io.ReadAll(io.LimitReader(res.Body, 4096))
		if readErr != nil {
			return nil, fmt.Errorf("%w: status %d", ErrGenerationFailed, res.StatusCode)
		}
		return nil, fmt.Errorf("%w: status %d: %s", ErrGenerationFailed, res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		OutputText string `json:"output_text"`
		Output     []struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrGenerationFailed, err)
	}
	outputText := strings.TrimSpace(payload.OutputText)
	if outputText == "" {
		for _, item := range payload.Output {
			for _, content := range item.Content {
				if content.Type == "output_text" && strings.TrimSpace(content.Text) != "" {
					outputText = strings.TrimSpace(content.Text)
					break
				}
			}
			if outputText != "" {
				break
			}
		}
	}
	if outputText == "" {
		return nil, fmt.Errorf("%w: response contained no output text", ErrGenerationFailed)
	}
	return []byte(stripCodeFence(outputText)), nil
}

// stripCodeFence tolerates models that wrap their JSON in a markdown fence.
func stripCodeFence(value string) string {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "```") {
		return value
	}
	value = strings.TrimPrefix(value, "```json")
	value = strings.TrimPrefix(value, "```")
	value = strings.TrimSuffix(strings.TrimSpace(value), "```")
	return strings.TrimSpace(value)
}
