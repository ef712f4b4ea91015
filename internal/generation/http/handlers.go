// Package http exposes the generation façade: a thin pass-through from the
// service's own endpoints to a local Ollama instance.
package http

import (
	"net/http"

	"github.com/RumTumTum/GraphRAG-Pattern/internal/generation/ollama"
	"github.com/gin-gonic/gin"
)

const serviceName = "GraphRAG Generation Server"

type Handler struct {
	client             *ollama.Client
	defaultModel       string
	defaultTemperature float64
}

func NewHandler(client *ollama.Client, defaultModel string, defaultTemperature float64) *Handler {
	return &Handler{
		client:             client,
		defaultModel:       defaultModel,
		defaultTemperature: defaultTemperature,
	}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.root)
	r.GET("/health", h.health)
	r.GET("/models", h.models)
	r.POST("/generate", h.generate)
	r.POST("/chat", h.chat)
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Service:   serviceName,
		Status:    "running",
		OllamaURL: h.client.BaseURL(),
	})
}

func (h *Handler) health(c *gin.Context) {
	connected := h.client.Healthy(c.Request.Context())

	status := "healthy"
	if !connected {
		status = "unhealthy"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:          status,
		OllamaConnected: connected,
	})
}

func (h *Handler) models(c *gin.Context) {
	names, err := h.client.ListModels(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to list models: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, ModelsResponse{
		Models: names,
		Count:  len(names),
	})
}

func (h *Handler) generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	model := req.Model
	if model == "" {
		model = h.defaultModel
	}
	temperature := h.defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	result, err := h.client.Generate(c.Request.Context(), ollama.GenerateParams{
		Prompt:      req.Prompt,
		Model:       model,
		System:      req.SystemPrompt,
		Context:     req.Context,
		Temperature: temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Text:           result.Response,
		Model:          model,
		EvalCount:      result.EvalCount,
		EvalDurationMs: float64(result.EvalDuration) / 1e6,
	})
}

func (h *Handler) chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	model := req.Model
	if model == "" {
		model = h.defaultModel
	}
	temperature := h.defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	result, err := h.client.Chat(c.Request.Context(), ollama.ChatParams{
		Messages:    req.Messages,
		Model:       model,
		Temperature: temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "chat completion failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Message:        result.Message,
		Model:          model,
		EvalCount:      result.EvalCount,
		EvalDurationMs: float64(result.EvalDuration) / 1e6,
	})
}
