package bootstrap

import (
	"github.com/RumTumTum/GraphRAG-Pattern/internal/api/http/middleware"
	genhttp "github.com/RumTumTum/GraphRAG-Pattern/internal/generation/http"
	"github.com/RumTumTum/GraphRAG-Pattern/internal/generation/ollama"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Ollama             *ollama.Client
	DefaultModel       string
	DefaultTemperature float64
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	handler := genhttp.NewHandler(dep.Ollama, dep.DefaultModel, dep.DefaultTemperature)
	handler.Register(r)

	return r
}
