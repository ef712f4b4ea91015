// Package ollama is a small client for the Ollama REST API, covering the
// generate, chat, tags and version endpoints used by the generation façade.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type GenerateParams struct {
	Prompt      string
	Model       string
	System      string
	Context     string
	Temperature float64
	MaxTokens   int
}

type GenerateResult struct {
	Response     string `json:"response"`
	EvalCount    int    `json:"eval_count"`
	EvalDuration int64  `json:"eval_duration"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatParams struct {
	Messages    []Message
	Model       string
	Temperature float64
	MaxTokens   int
}

type ChatResult struct {
	Message      Message `json:"message"`
	EvalCount    int     `json:"eval_count"`
	EvalDuration int64   `json:"eval_duration"`
}

type modelInfo struct {
	Name string `json:"name"`
}

type tagsResponse struct {
	Models []modelInfo `json:"models"`
}

// ListModels returns the names of the models known to the Ollama instance.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	var tags tagsResponse
	if err := c.getJSON(ctx, "/api/tags", &tags); err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Generate runs a single non-streaming completion. A context string, when
// present, is prepended to the prompt in the fixed
// "Context:\n...\n\nQuestion: ..." form the rest of the demo expects.
func (c *Client) Generate(ctx context.Context, p GenerateParams) (*GenerateResult, error) {
	fullPrompt := p.Prompt
	if p.Context != "" {
		fullPrompt = fmt.Sprintf("Context:\n%s\n\nQuestion: %s", p.Context, p.Prompt)
	}

	payload := map[string]any{
		"model":   p.Model,
		"prompt":  fullPrompt,
		"stream":  false,
		"options": buildOptions(p.Temperature, p.MaxTokens),
	}
	if p.System != "" {
		payload["system"] = p.System
	}

	var result GenerateResult
	if err := c.postJSON(ctx, "/api/generate", payload, &result); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return &result, nil
}

// Chat runs a single non-streaming chat completion. The message list is
// forwarded to Ollama unmodified.
func (c *Client) Chat(ctx context.Context, p ChatParams) (*ChatResult, error) {
	payload := map[string]any{
		"model":    p.Model,
		"messages": p.Messages,
		"stream":   false,
		"options":  buildOptions(p.Temperature, p.MaxTokens),
	}

	var result ChatResult
	if err := c.postJSON(ctx, "/api/chat", payload, &result); err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	return &result, nil
}

// Healthy reports whether the Ollama endpoint answers its version route.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/version", nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func buildOptions(temperature float64, maxTokens int) map[string]any {
	opts := map[string]any{
		"temperature": temperature,
	}
	if maxTokens > 0 {
		opts["num_predict"] = maxTokens
	}
	return opts
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return httpError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return httpError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func httpError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := strings.TrimSpace(string(b))
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("ollama returned %d: %s", resp.StatusCode, msg)
}
