package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Ollama OllamaConfig
	Neo4j  Neo4jConfig
	App    AppConfig
}

type ServerConfig struct {
	Port string
}

type OllamaConfig struct {
	BaseURL            string
	DefaultModel       string
	DefaultTemperature float64
	Timeout            time.Duration
}

type Neo4jConfig struct {
	URI      string
	User     string
	Password string
	Database string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
		},
		Ollama: OllamaConfig{
			BaseURL:            strings.TrimRight(getEnv("OLLAMA_BASE_URL", "http://localhost:11434"), "/"),
			DefaultModel:       getEnv("DEFAULT_MODEL", "llama3.2:latest"),
			DefaultTemperature: getEnvAsFloat("DEFAULT_TEMPERATURE", 0.7),
			Timeout:            time.Duration(getEnvAsInt("OLLAMA_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		Neo4j: Neo4jConfig{
			URI:      getEnv("NEO4J_URI", "bolt://localhost:7687"),
			User:     getEnv("NEO4J_USER", ""),
			Password: getEnv("NEO4J_PASSWORD", ""),
			Database: getEnv("NEO4J_DATABASE", "neo4j"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Ollama.BaseURL == "" {
		return fmt.Errorf("OLLAMA_BASE_URL is required")
	}

	return nil
}

// ValidateNeo4j is called by the kg CLI, which cannot run without credentials.
// The generation server never talks to Neo4j, so Load does not require them.
func (c *Config) ValidateNeo4j() error {
	if c.Neo4j.User == "" || c.Neo4j.Password == "" {
		return fmt.Errorf("NEO4J_USER and NEO4J_PASSWORD environment variables must be set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}
