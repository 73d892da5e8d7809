package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/0tsuro/SparkCar/common/id"
	"github.com/0tsuro/SparkCar/common/logger"
	"github.com/0tsuro/SparkCar/common/otel"
	"github.com/0tsuro/SparkCar/core/config"
	"github.com/0tsuro/SparkCar/internal/comparison"
	"github.com/0tsuro/SparkCar/internal/http/handler"
	"github.com/0tsuro/SparkCar/internal/http/middleware"
	httprouter "github.com/0tsuro/SparkCar/internal/http/router"
	"github.com/0tsuro/SparkCar/internal/mailer"
	"github.com/0tsuro/SparkCar/internal/queue"
	"github.com/0tsuro/SparkCar/internal/service"
	"github.com/0tsuro/SparkCar/internal/site"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "sparkcar site starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	failures := setupFailureRecorder(ctx, cfg.Diagnostics)

	var m mailer.Mailer
	if cfg.Contact.Enabled() {
		m = mailer.NewResendMailer(cfg.Contact.APIKey)
	} else {
		slog.WarnContext(ctx, "RESEND_API_KEY is not set, contact submissions will fail")
	}

	contactService := service.NewContactService(cfg.Contact, m, failures, slog.Default())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, contactService)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if err := failures.Close(); err != nil {
		slog.ErrorContext(shutdownCtx, "failure recorder close error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// setupFailureRecorder connects to Redis when diagnostics are configured.
// An unreachable Redis only disables failure retention.
func setupFailureRecorder(ctx context.Context, cfg config.DiagnosticsConfig) queue.FailureRecorder {
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "contact failure retention disabled (no REDIS_URL)")
		return queue.NopFailureRecorder()
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.WarnContext(ctx, "invalid redis url, contact failure retention disabled", "error", err)
		return queue.NopFailureRecorder()
	}

	client := redis.NewClient(redisOpts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.WarnContext(ctx, "redis unreachable, contact failure retention disabled", "error", err)
		_ = client.Close()
		return queue.NopFailureRecorder()
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.FailureStream)

	return queue.NewRedisFailureRecorder(client, cfg.FailureStream, slog.Default())
}

func setupRouter(cfg config.Config, contactService service.ContactService) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	httprouter.SetupRoutes(router, httprouter.RouterConfig{
		ContactService: contactService,
		Content: handler.SiteContent{
			Slides:           site.DefaultSlides(),
			Plans:            site.Plans(),
			Contact:          site.Contact(),
			AutoplayInterval: comparison.AutoplayInterval,
		},
	})

	return router
}

const banner = `
  ____                   _     ____
 / ___| _ __   __ _ _ __| | __/ ___|__ _ _ __
 \___ \| '_ \ / _' | '__| |/ / |   / _' | '__|
  ___) | |_) | (_| | |  |   <| |__| (_| | |
 |____/| .__/ \__,_|_|  |_|\_\\____\__,_|_|
       |_|
`
