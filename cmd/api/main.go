package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sovinsight/internal/cache"
	"sovinsight/internal/config"
	"sovinsight/internal/handler"
	"sovinsight/internal/insight"
	"sovinsight/internal/model"
	"sovinsight/pkg/gateway"
	"sovinsight/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()
	if cfg.GatewayURL == "" {
		log.Fatal("GATEWAY_URL environment variable is required")
	}

	var completer llm.Completer
	switch cfg.LLMProvider {
	case "anthropic":
		completer = llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.LLMModel, cfg.LLMMaxTokens, cfg.LLMTemperature)
	default:
		completer = llm.NewOpenRouterClient(cfg.OpenRouterAPIKey, cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMMaxTokens, cfg.LLMTemperature)
	}
	slog.Info("text backend configured", "backend", completer.Name())

	gw := gateway.NewClient(cfg.GatewayURL, cfg.CMSGatewayURL)
	reports := cache.NewReportCache(cfg.CacheMaxEntries, cfg.CacheTTL)
	orchestrator := insight.NewOrchestrator(gw, completer, reports)
	insightHandler := handler.NewInsightHandler(orchestrator, cfg.AppVersion)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "x-token", "x-refresh-token"},
	}))

	r.POST("/sov/generate_insight", insightHandler.GenerateInsight(model.KindShareOfVoice))
	r.POST("/sentiment_breakdown/generate_insight", insightHandler.GenerateInsight(model.KindSentimentBreakdown))
	r.POST("/brand-health/generate_insight", insightHandler.GenerateInsight(model.KindBrandHealth))
	r.POST("/channel-breakdown/generate_insight", insightHandler.GenerateInsight(model.KindChannelBreakdown))
	r.POST("/band-attribute/generate_insight", insightHandler.GenerateInsight(model.KindBrandAttribute))
	r.GET("/health", insightHandler.GetHealth)

	err := r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
