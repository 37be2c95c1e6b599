package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	assistantv1 "github.com/o-adebayo/pdf-assistant/gen/proto/assistant/v1"
	"github.com/o-adebayo/pdf-assistant/internal/assistant"
	"github.com/o-adebayo/pdf-assistant/internal/async"
	"github.com/o-adebayo/pdf-assistant/internal/common"
	"github.com/o-adebayo/pdf-assistant/internal/credential"
	"github.com/o-adebayo/pdf-assistant/internal/export"
	"github.com/o-adebayo/pdf-assistant/internal/extract"
	"github.com/o-adebayo/pdf-assistant/internal/ingest"
	"github.com/o-adebayo/pdf-assistant/internal/llm"
	"github.com/o-adebayo/pdf-assistant/internal/llm/perplexity"
	"github.com/o-adebayo/pdf-assistant/internal/server"
	"github.com/o-adebayo/pdf-assistant/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err = st.Ping(pingCtx)
	cancel()
	if err != nil {
		logger.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	pool, err := credential.NewPool(
		[]string{cfg.LLM.APIKey1, cfg.LLM.APIKey2},
		credential.WithMinInterval(cfg.LLM.MinRequestInterval),
		credential.WithErrorWeight(cfg.LLM.ErrorWeight),
	)
	if err != nil {
		logger.Error("failed to build credential pool", "error", err)
		os.Exit(2)
	}
	logger.Info("credential pool ready", "keys", pool.Size(), "min_interval", pool.MinInterval().String())

	dispatcher := llm.NewDispatcher(pool, llm.Config{
		URL:     strings.TrimRight(cfg.LLM.BaseURL, "/") + "/chat/completions",
		Timeout: cfg.LLM.Timeout,
	}, logger)

	completer := perplexity.NewClient(dispatcher, perplexity.Config{
		Model:          cfg.LLM.Model,
		FallbackModels: cfg.LLM.FallbackModels,
		MaxTokens:      cfg.LLM.MaxTokens,
		Temperature:    cfg.LLM.Temperature,
	}, logger)

	docs := st.Documents()
	arts := st.Artifacts()

	extractor := extract.NewPDFExtractor(logger)
	processor := ingest.NewProcessor(docs, extractor, logger)
	queue := async.NewExtractQueue(processor, logger)

	svc := server.NewAssistantService(server.Deps{
		Ingestor:   ingest.NewUsecase(docs, cfg.Server.DataDir, logger),
		Queue:      queue,
		Docs:       docs,
		Arts:       arts,
		Summarizer: assistant.NewSummarizer(completer, assistant.SummarizerConfig{MaxChars: cfg.Limits.SummaryChars, MaxChunks: cfg.Limits.MaxChunks}, logger),
		Quizzer:    assistant.NewQuizzer(completer, assistant.QuizzerConfig{MaxChars: cfg.Limits.QuizChars}, logger),
		Answerer:   assistant.NewAnswerer(completer, assistant.AnswererConfig{MaxChars: cfg.Limits.AnswerChars}, logger),
		Exporter:   export.NewService(docs, arts, logger),
		Stats:      dispatcher,
		ModelName:  cfg.LLM.Model,
	}, logger)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(server.UnaryRequestID(logger)))
	assistantv1.RegisterAssistantServiceServer(grpcServer, svc)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	queue.Shutdown(drainCtx)
	cancel()

	grpcServer.GracefulStop()
	logger.Info("stopped")
}

// openStore picks the backend from the DB URL scheme.
func openStore(ctx context.Context, cfg *common.Config, logger *slog.Logger) (store.Store, error) {
	if strings.HasPrefix(cfg.Database.URL, "postgres://") || strings.HasPrefix(cfg.Database.URL, "postgresql://") {
		return store.OpenPostgres(ctx, store.PostgresConfig{
			DSN:             cfg.Database.URL,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
	}
	return store.OpenSQLite(ctx, cfg.Database.URL, logger)
}
