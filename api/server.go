package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meghashyamc/finder/config"
	"github.com/meghashyamc/finder/db/kvdb"
	"github.com/meghashyamc/finder/logger"
	"github.com/meghashyamc/finder/services/recents"
	"github.com/meghashyamc/finder/validation"
	"github.com/spf13/afero"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	cfg        *config.Config
	router     *gin.Engine
	httpServer *http.Server
	fs         afero.Fs
	kvdb       kvdb.DB
	recents    *recents.Service
	validator  *validation.Validator
	logger     logger.Logger
}

// Run serves the API until ctx is cancelled or the process is interrupted.
func Run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	s := &server{
		cfg:    cfg,
		fs:     afero.NewOsFs(),
		logger: logger.New(cfg.GetLogLevel()),
	}
	if err := s.setupDependencies(); err != nil {
		return err
	}
	s.setupRouter()

	serveErr := s.startHTTPServer()
	select {
	case err := <-serveErr:
		s.kvdb.Close()
		return err
	case <-ctx.Done():
	}

	return s.shutdown()
}

func (s *server) setupDependencies() error {
	var err error
	s.kvdb, err = kvdb.New(s.logger, s.cfg)
	if err != nil {
		s.logger.Error("error creating kvDB", "err", err.Error())
		return err
	}
	s.recents = recents.New(s.logger, s.kvdb, s.cfg.GetRecentsLimit())
	s.validator, err = validation.New(s.logger)
	if err != nil {
		s.logger.Error("error creating validator", "err", err.Error())
		s.kvdb.Close()
		return err
	}

	return nil
}

func (s *server) setupRouter() {
	router := newRouter(s.logger)

	setupRoutes(router, s.logger, s.fs, s.recents, s.validator, s.cfg.GetHomeDir())

	s.router = router
}

func (s *server) addr() string {
	return net.JoinHostPort(s.cfg.GetHost(), s.cfg.GetPort())
}

func (s *server) startHTTPServer() <-chan error {
	s.httpServer = &http.Server{
		Addr:    s.addr(),
		Handler: s.router.Handler(),
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("starting http server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server stopped", "err", err.Error())
			serveErr <- err
		}
	}()

	return serveErr
}

func (s *server) shutdown() error {
	s.logger.Info("starting to shut down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	if closeErr := s.kvdb.Close(); closeErr != nil {
		s.logger.Error("error closing kvDB", "err", closeErr.Error())
	}
	if err != nil {
		s.logger.Error("error shutting down http server", "err", err.Error())
		return err
	}

	s.logger.Info("shut down http server successfully")
	return nil
}
