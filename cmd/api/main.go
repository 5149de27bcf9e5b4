package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Shining2020/zhihuiwenzhang/internal/config"
	"github.com/Shining2020/zhihuiwenzhang/internal/handler"
	"github.com/Shining2020/zhihuiwenzhang/internal/middleware"
	"github.com/Shining2020/zhihuiwenzhang/internal/prompt"
	"github.com/Shining2020/zhihuiwenzhang/pkg/llm"
	"github.com/Shining2020/zhihuiwenzhang/pkg/search"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	assets, err := prompt.Load(cfg.PromptsDir)
	if err != nil {
		log.Fatalf("error loading prompt assets: %v", err)
	}

	var completer llm.Completer
	switch cfg.LLMProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey != "" {
			completer = llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.LLMModel)
		}
	default:
		if cfg.OpenAIAPIKey != "" {
			completer = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.LLMModel)
		}
	}
	if completer == nil {
		slog.Warn("no completion credential configured, /api/generate will refuse requests")
	}

	var searcher search.Client
	if cfg.SerperAPIKey != "" {
		searcher = search.NewSerperClient(cfg.SerperAPIKey)
	} else {
		slog.Warn("no search credential configured, /api/search will refuse requests")
	}

	generateHandler := handler.NewGenerateHandler(completer, assets)
	searchHandler := handler.NewSearchHandler(searcher)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	r.POST("/api/generate", generateHandler.Generate)
	r.POST("/api/search", searchHandler.Search)
	r.GET("/health", handler.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
