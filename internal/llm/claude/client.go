package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"resumegen-backend/internal/llm"
	"resumegen-backend/internal/shared/metrics"
	"resumegen-backend/internal/shared/telemetry"
)

const (
	// APIEndpoint is the Anthropic Messages API endpoint.
	APIEndpoint = "https://api.anthropic.com/v1/messages"
	// APIVersion is the Anthropic API version header value.
	APIVersion = "2023-06-01"
	// DefaultModel is used when no model is configured.
	DefaultModel = "claude-sonnet-4-20250514"

	analysisMaxTokens = 2000
	resumeMaxTokens   = 3000
)

// Client implements llm.Client against the Claude Messages API.
type Client struct {
	apiKey     string
	model      string
	language   string
	endpoint   string
	httpClient *http.Client
}

// NewClient constructs a Claude client.
func NewClient(apiKey, model, language string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:   apiKey,
		model:    model,
		language: language,
		endpoint: APIEndpoint,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// GenerateAnalysis produces a personality analysis from the documents.
// Unparseable oracle output degrades to the fallback result, never an error.
func (c *Client) GenerateAnalysis(ctx context.Context, docs []llm.DocumentInput) (llm.PersonalityResult, error) {
	system := llm.AnalysisSystemPrompt(c.language)
	raw, err := c.sendRequest(ctx, system, llm.RenderDocuments(docs), analysisMaxTokens)
	if err != nil {
		return llm.PersonalityResult{}, err
	}

	cleaned := stripMarkdownCodeFences(raw)
	var result llm.PersonalityResult
	if !gjson.Valid(cleaned) || json.Unmarshal([]byte(cleaned), &result) != nil {
		c.logUnparseable("analysis", raw)
		return llm.FallbackAnalysis(), nil
	}
	return result, nil
}

// GenerateResume produces a resume tailored to the job category.
func (c *Client) GenerateResume(ctx context.Context, docs []llm.DocumentInput, jobCategory, jobTitle string) (llm.ResumeResult, error) {
	system := llm.ResumeSystemPrompt(c.language, jobCategory, jobTitle)
	raw, err := c.sendRequest(ctx, system, llm.RenderDocuments(docs), resumeMaxTokens)
	if err != nil {
		return llm.ResumeResult{}, err
	}

	cleaned := stripMarkdownCodeFences(raw)
	var result llm.ResumeResult
	if !gjson.Valid(cleaned) || json.Unmarshal([]byte(cleaned), &result) != nil {
		c.logUnparseable("resume", raw)
		return llm.FallbackResume(jobCategory), nil
	}
	return result, nil
}

// logUnparseable records the raw oracle output server-side; the fallback
// silently discards it from the client's view.
func (c *Client) logUnparseable(operation, raw string) {
	metrics.IncGenerationFallback()
	telemetry.Error("llm.unparseable_response", map[string]any{
		"operation": operation,
		"model":     c.model,
		"raw":       raw,
	})
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (c *Client) sendRequest(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	reqBody, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", errors.Wrap(err, "failed to create HTTP request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", APIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(llm.ErrGenerationUnavailable, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(llm.ErrGenerationUnavailable, err.Error())
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", llm.ErrThrottled
	}
	if resp.StatusCode != http.StatusOK {
		telemetry.Error("llm.request_failed", map[string]any{
			"status": resp.StatusCode,
			"model":  c.model,
		})
		return "", errors.Wrapf(llm.ErrGenerationUnavailable, "API request failed with status %d", resp.StatusCode)
	}

	var parsed messagesResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errors.Wrap(llm.ErrGenerationUnavailable, "failed to parse API response")
	}
	if len(parsed.Content) == 0 {
		return "", errors.Wrap(llm.ErrGenerationUnavailable, "no content in API response")
	}
	return parsed.Content[0].Text, nil
}

// stripMarkdownCodeFences removes a surrounding ``` or ```json fence, which
// models add despite instructions to return bare JSON.
func stripMarkdownCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	if idx := strings.IndexByte(cleaned, '\n'); idx >= 0 {
		cleaned = cleaned[idx+1:]
	} else {
		return cleaned
	}
	cleaned = strings.TrimRight(cleaned, " \r\n")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
