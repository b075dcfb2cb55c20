package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cleberrangel/reader-calc/internal/config"
	"github.com/cleberrangel/reader-calc/internal/handler"
	"github.com/cleberrangel/reader-calc/internal/logger"
	"github.com/cleberrangel/reader-calc/internal/metrics"
	"github.com/cleberrangel/reader-calc/internal/middleware"
	"github.com/cleberrangel/reader-calc/internal/service"
	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

func main() {
	// Carrega configurações
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Erro ao carregar configurações: %v", err)
	}

	// Inicializa logger estruturado
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	log := logger.Global()
	log.Info().
		Str("version", Version).
		Str("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Bool("log_json", cfg.LogJSON).
		Int("max_pages", cfg.MaxPages).
		Msg("Reader Calc iniciando")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Inicializa dependências
	metrics.Init()
	m := metrics.Get()
	calculator := service.NewCalculatorService(cfg.MaxPages, m)
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerMinute: cfg.RateLimitPerMinute,
		Burst:             cfg.RateLimitBurst,
	}, m)
	rateLimiter.StartCleanup(ctx, time.Minute)

	// Configura modo do Gin
	gin.SetMode(cfg.GinMode)

	r, err := handler.NewRouter(handler.RouterConfig{
		Calculator:  calculator,
		Metrics:     m,
		RateLimiter: rateLimiter,
		Version:     Version,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao montar rotas")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Servidor iniciando")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Erro ao iniciar servidor")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Erro ao encerrar servidor")
		os.Exit(1)
	}
}
