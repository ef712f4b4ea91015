package http

import "github.com/RumTumTum/GraphRAG-Pattern/internal/generation/ollama"

type GenerateRequest struct {
	Prompt       string   `json:"prompt" binding:"required"`
	Model        string   `json:"model"`
	Temperature  *float64 `json:"temperature"`
	MaxTokens    int      `json:"max_tokens"`
	Context      string   `json:"context"`
	SystemPrompt string   `json:"system_prompt"`
}

type GenerateResponse struct {
	Text           string  `json:"text"`
	Model          string  `json:"model"`
	EvalCount      int     `json:"eval_count"`
	EvalDurationMs float64 `json:"eval_duration_ms"`
}

type ChatRequest struct {
	Messages    []ollama.Message `json:"messages" binding:"required,min=1"`
	Model       string           `json:"model"`
	Temperature *float64         `json:"temperature"`
	MaxTokens   int              `json:"max_tokens"`
}

type ChatResponse struct {
	Message        ollama.Message `json:"message"`
	Model          string         `json:"model"`
	EvalCount      int            `json:"eval_count"`
	EvalDurationMs float64        `json:"eval_duration_ms"`
}

type ModelsResponse struct {
	Models []string `json:"models"`
	Count  int      `json:"count"`
}

type HealthResponse struct {
	Status          string `json:"status"`
	OllamaConnected bool   `json:"ollama_connected"`
}

type RootResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	OllamaURL string `json:"ollama_url"`
}
