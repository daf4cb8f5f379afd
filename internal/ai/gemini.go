package ai

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/sakinahapp/sakinah/internal/fault"
)

const (
	geminiAPIBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel  = "gemini-2.5-flash-lite"
	geminiSafetyBlockAt = "BLOCK_MEDIUM_AND_ABOVE"
)

// GeminiProvider implements the Provider interface for Google's Gemini.
type GeminiProvider struct {
	apiKey       string
	defaultModel string
	baseURL      string
	client       *http.Client
}

func init() {
	Register("gemini", func(apiKey string) (Provider, error) {
		if apiKey == "" {
			return nil, fmt.Errorf("API key required for Gemini provider")
		}
		return NewGeminiProvider(apiKey, ""), nil
	})
}

// NewGeminiProvider builds a provider. An empty model means DefaultGeminiModel.
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiProvider{
		apiKey:       apiKey,
		defaultModel: model,
		baseURL:      geminiAPIBaseURL,
		client:       &http.Client{},
	}
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

func (g *GeminiProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	model, body, err := g.buildBody(req)
	if err != nil {
		return nil, err
	}

	// Gemini only accepts the API key as a query parameter. Keys are stored
	// encrypted at rest and only sent over HTTPS.
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, model, g.apiKey)
	resp, err := g.post(ctx, url, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var apiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fault.Upstream("gemini", resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}

	content := apiResp.text()
	if content == "" {
		return nil, ErrNoResponse
	}

	usage := Usage{}
	if apiResp.UsageMetadata != nil {
		usage.PromptTokens = apiResp.UsageMetadata.PromptTokenCount
		usage.CompletionTokens = apiResp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = apiResp.UsageMetadata.TotalTokenCount
	}

	return &Response{
		Content: content,
		Model:   model,
		Usage:   usage,
	}, nil
}

func (g *GeminiProvider) Stream(ctx context.Context, req *Request, w io.Writer) (string, error) {
	model, body, err := g.buildBody(req)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse&key=%s", g.baseURL, model, g.apiKey)
	resp, err := g.post(ctx, url, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var full strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		data, ok := strings.CutPrefix(line, "data: ")
		if !ok || data == "[DONE]" {
			continue
		}

		var event geminiResponse
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			continue // skip malformed events
		}
		text := event.text()
		if text == "" {
			continue
		}
		full.WriteString(text)
		if _, err := io.WriteString(w, text); err != nil {
			return full.String(), err
		}
	}
	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return full.String(), ctx.Err()
		}
		return full.String(), fault.Upstream("gemini", 0, err)
	}

	if full.Len() == 0 {
		return "", ErrNoResponse
	}
	return full.String(), nil
}

func (g *GeminiProvider) buildBody(req *Request) (string, []byte, error) {
	if err := req.Validate(); err != nil {
		return "", nil, err
	}

	model := req.Model
	if model == "" {
		model = g.defaultModel
	}

	contents := make([]geminiContent, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: m.Content}},
		})
	}

	apiReq := geminiRequest{
		Contents: contents,
		GenerationConfig: geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
			TopP:            req.TopP,
		},
		SafetySettings: []geminiSafetySetting{
			{Category: "HARM_CATEGORY_HARASSMENT", Threshold: geminiSafetyBlockAt},
			{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: geminiSafetyBlockAt},
		},
	}
	if req.System != "" {
		apiReq.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.System}},
		}
	}

	body, err := json.Marshal(apiReq)
	return model, body, err
}

func (g *GeminiProvider) post(ctx context.Context, url string, body []byte) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fault.Upstream("gemini", 0, err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fault.Upstream("gemini", resp.StatusCode, errors.New(geminiErrorMessage(raw, resp.StatusCode)))
	}
	return resp, nil
}

// geminiErrorMessage extracts error.message from an API error body.
func geminiErrorMessage(raw []byte, status int) string {
	var e struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &e) == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return http.StatusText(status)
}

// Gemini API types
type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
	SafetySettings    []geminiSafetySetting  `json:"safetySettings,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiUsage struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type geminiResponse struct {
	Candidates    []geminiCandidate `json:"candidates"`
	UsageMetadata *geminiUsage      `json:"usageMetadata,omitempty"`
}

func (r geminiResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
