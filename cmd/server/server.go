package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-dungeon/internal/config"
	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/levels/v1alpha1"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/level"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-dungeon/internal/redis"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
)

const redisPingTimeout = 5 * time.Second

var (
	grpcPort   int
	redisAddr  string
	configPath string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the dungeon LevelService gRPC server.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", config.DefaultPort, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address for level records (empty keeps them in memory)")
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = grpcPort
	}
	if cmd.Flags().Changed("redis-addr") {
		cfg.Server.RedisAddr = redisAddr
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	levelService, err := newLevelService(ctx, cfg)
	if err != nil {
		return err
	}

	levelHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		LevelService: levelService,
	})
	if err != nil {
		return fmt.Errorf("failed to create level handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
	)

	v1alpha1.RegisterLevelServiceServer(srv, levelHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Server.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newLevelService wires the builder, record repository and orchestrator
func newLevelService(ctx context.Context, cfg *config.Config) (level.Service, error) {
	builder, err := mapgen.NewBuilder(&mapgen.BuilderConfig{
		Generation: cfg.Generation,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create level builder: %w", err)
	}

	clk := clock.New()

	var repo levels.Repository
	if cfg.Server.RedisAddr == "" {
		slog.Info("Keeping level records in memory")
		repo = levels.NewInMemory(clk, cfg.Server.RecordTTL)
	} else {
		client, err := redisclient.NewClient(cfg.Server.RedisAddr, &redisclient.Options{
			DialTimeout: redisPingTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Server.RedisAddr, err)
		}
		slog.Info("Storing level records in redis", "addr", cfg.Server.RedisAddr)

		repo, err = levels.NewRedisRepository(&levels.Config{
			Client: client,
			Clock:  clk,
			TTL:    cfg.Server.RecordTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create level repository: %w", err)
		}
	}

	svc, err := level.NewOrchestrator(&level.Config{
		Builder:     builder,
		LevelRepo:   repo,
		IDGenerator: idgen.NewUUID("level"),
		Clock:       clk,
		RecordTTL:   cfg.Server.RecordTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create level orchestrator: %w", err)
	}
	return svc, nil
}

// logFunc adapts the grpc logging interceptor to slog. The interceptor's
// levels share slog's numeric values.
func logFunc(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(lvl), msg, fields...)
}
