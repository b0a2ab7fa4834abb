package server

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/svcbase/item-service/internal/commons"
	"github.com/svcbase/item-service/internal/health"
	"github.com/svcbase/item-service/internal/logger"
	"github.com/svcbase/item-service/internal/metrics"
	"github.com/svcbase/item-service/internal/repository"
	"github.com/svcbase/item-service/internal/service"
	"github.com/svcbase/item-service/internal/worker"
)

type Server struct {
	config        Config
	router        http.Handler
	instanceID    uuid.UUID
	itemRepo      repository.ItemRepository
	metrics       *metrics.Metrics
	statsReporter *worker.StatsReporter
	closers       []io.Closer
}

func NewServer(config Config) (*Server, error) {
	itemRepo := repository.NewMemoryItemRepository()
	itemService := service.NewItemService(itemRepo)
	m := metrics.New()

	s := &Server{
		config:     config,
		instanceID: uuid.New(),
		itemRepo:   itemRepo,
		metrics:    m,
	}

	checkers := []health.Checker{health.NewAppChecker()}
	if config.RedisAddr != "" {
		redisChecker := health.NewRedisChecker(config.RedisAddr, config.RedisPass)
		checkers = append(checkers, redisChecker)
		s.closers = append(s.closers, redisChecker)
	}
	if config.PostgresConn != "" {
		postgresChecker, err := health.NewPostgresChecker(config.PostgresConn)
		if err != nil {
			return nil, fmt.Errorf("failed to create database checker: %w", err)
		}
		checkers = append(checkers, postgresChecker)
		s.closers = append(s.closers, postgresChecker)
	}

	s.statsReporter = worker.NewStatsReporter(itemRepo, m)
	s.registerRoutes(itemService, checkers)

	return s, nil
}

// Router exposes the configured handler chain for in-process tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	if err := s.statsReporter.Start(ctx); err != nil {
		return fmt.Errorf("failed to start stats reporter: %w", err)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Host, s.config.Port),
		Handler:      s.router,
		IdleTimeout:  commons.ServerIdleTimeout,
		ReadTimeout:  commons.ServerReadTimeout,
		WriteTimeout: commons.ServerWriteTimeout,
	}

	logger.Infof("starting %s on %s (environment: %s)", commons.ServiceName, server.Addr, s.config.Environment)

	ch := make(chan error, 1)
	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			ch <- fmt.Errorf("failed to start server: %w", err)
		}
		close(ch)
	}()

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), commons.ServerShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return s.Close()
	}
}

func (s *Server) Close() error {
	for _, closer := range s.closers {
		if err := closer.Close(); err != nil {
			logger.Errorf("failed to close dependency: %v", err)
		}
	}
	return s.itemRepo.Close()
}
