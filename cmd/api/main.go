package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"triage-assistant/internal/config"
	"triage-assistant/internal/db"
	"triage-assistant/internal/domain"
	apihttp "triage-assistant/internal/http"
	"triage-assistant/internal/i18n"
	"triage-assistant/internal/llm"
	"triage-assistant/internal/logging"
	"triage-assistant/internal/repository"
	"triage-assistant/internal/rulebook"
	"triage-assistant/internal/service"
	"triage-assistant/internal/triage"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	book, err := rulebook.Load(cfg.RulesFile)
	if err != nil {
		logger.Fatal("load rules", zap.String("path", cfg.RulesFile), zap.Error(err))
	}
	engine := triage.NewEngine(book, logger)
	catalog := i18n.Default()
	defaultLocale := domain.ParseLocale(cfg.DefaultLanguage, domain.LocaleEN)

	registry := llm.NewRegistryFromConfig(llm.RegistryConfig{
		DefaultProvider: cfg.LLMProvider,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		OpenAIBaseURL:   cfg.OpenAIBaseURL,
		OpenAIModel:     cfg.OpenAIModel,
		OllamaBaseURL:   cfg.OllamaBaseURL,
		OllamaModel:     cfg.OllamaModel,
	}, logger)
	adviceSvc := service.NewAdviceService(registry, service.NewAdvicePromptBuilder(catalog), cfg.AITemperature, logger)

	var faqRepo repository.FAQRepository
	embedded, err := repository.NewEmbeddedFAQRepository()
	if err != nil {
		logger.Fatal("load embedded faq", zap.Error(err))
	}
	faqRepo = embedded
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("db connect failed, using embedded faq", zap.Error(err))
		} else {
			defer pool.Close()
			ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
			if err := db.Ping(ctxPing, pool); err != nil {
				logger.Warn("db ping failed, using embedded faq", zap.Error(err))
			} else {
				faqRepo = repository.NewPgFAQRepository(pool)
			}
			cancel()
		}
	}
	faqSvc := service.NewFAQService(faqRepo, logger)

	var adviceLimiter service.AdviceRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, advice is not rate limited", zap.Error(err))
		} else {
			adviceLimiter = service.NewRedisAdviceRateLimiter(redisClient, cfg.AdviceRateWindow(), cfg.AdviceRateLimit)
		}
		cancel()
	}

	triageHandler := apihttp.NewTriageHandler(logger, engine, catalog, adviceSvc, adviceLimiter, defaultLocale)
	faqHandler := apihttp.NewFAQHandler(logger, faqSvc, catalog, defaultLocale)
	router := apihttp.NewRouter(logger, apihttp.RouterConfig{CORSOrigins: cfg.CORSOrigins}, triageHandler, faqHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.Int("rules", len(book.Rules())),
		zap.String("default_language", string(defaultLocale)),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
