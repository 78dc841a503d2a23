package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"

	grpcRouter "github.com/dtroode/friendgraph/internal/api/grpc/router"
	grpcServer "github.com/dtroode/friendgraph/internal/api/grpc/server"
	httpRouter "github.com/dtroode/friendgraph/internal/api/http/router"
	httpServer "github.com/dtroode/friendgraph/internal/api/http/server"
	"github.com/dtroode/friendgraph/internal/config"
	"github.com/dtroode/friendgraph/internal/logger"
	"github.com/dtroode/friendgraph/internal/model"
	"github.com/dtroode/friendgraph/internal/repository/postgres"
	"github.com/dtroode/friendgraph/internal/server"
	"github.com/dtroode/friendgraph/internal/service"
	storage "github.com/dtroode/friendgraph/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	logAppVersion()

	stores := map[string]model.SnapshotStore{}

	if cfg.Database.DSN != "" {
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Fatal("failed to initialize database", "error", err)
		}
		defer db.Close()
		stores[service.SchemePostgres] = postgres.NewSnapshotRepository(db)
	}

	if cfg.Storage.Endpoint != "" {
		minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to create minio client", "error", err)
		}
		storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		stores[service.SchemeS3] = storageClient
	}

	network := service.NewNetwork(stores, logger)

	err = network.Load(ctx, cfg.Graph.SnapshotPath)
	switch {
	case err == nil:
		stats := network.Stats(ctx)
		logger.Info("snapshot loaded", "path", cfg.Graph.SnapshotPath, "users", stats.Users, "friendships", stats.Friendships)
	case errors.Is(err, model.ErrNotFound):
		logger.Info("no snapshot found, starting with an empty network", "path", cfg.Graph.SnapshotPath)
	default:
		logger.Fatal("failed to load snapshot", "path", cfg.Graph.SnapshotPath, "error", err)
	}

	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	httpHandler := httpRouter.New(network, httpRouter.Options{
		ReadOnly:     cfg.Graph.ReadOnly,
		CORSOrigins:  cfg.HTTP.CORSOrigins,
		SnapshotPath: cfg.Graph.SnapshotPath,
	}, logger).Register()

	grpcHandler := grpcRouter.New(network, cfg.Graph.ReadOnly, cfg.Graph.SnapshotPath, logger).Register()

	servers := []model.Server{
		httpServer.NewHTTPServer(httpHandler, cfg.HTTP.Address, cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout),
		grpcServer.NewGRPCServer(grpcHandler, fmt.Sprintf(":%s", cfg.GRPC.Port)),
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		g.Go(func() error {
			logger.Info("starting server", "address", s.Address())
			if err := s.Start(sl); err != nil {
				return fmt.Errorf("server %s: %w", s.Address(), err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		for _, s := range servers {
			if err := s.Stop(shutdownCtx); err != nil {
				logger.Error("error during server shutdown", "error", err, "address", s.Address())
			}
		}

		if cfg.Graph.SaveOnExit {
			if err := network.Save(shutdownCtx, cfg.Graph.SnapshotPath); err != nil {
				logger.Error("failed to save snapshot", "path", cfg.Graph.SnapshotPath, "error", err)
			} else {
				logger.Info("snapshot saved", "path", cfg.Graph.SnapshotPath)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
	}
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
