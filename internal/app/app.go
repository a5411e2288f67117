package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ultraai/internal/api/router"
	"ultraai/internal/auth"
	"ultraai/internal/config"
	"ultraai/internal/db"
	"ultraai/internal/logger"
	"ultraai/internal/relay"
	"ultraai/internal/repository"
	"ultraai/internal/storage"
)

type App struct {
	config *config.Config
	repos  *repository.Repositories
	server *http.Server
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	level := "info"
	if cfg.App.Debug {
		level = "debug"
	}
	logger.Init(logger.Config{
		Level:  level,
		Format: "console",
		Output: "stdout",
	})

	log := logger.WithComponent("app")
	log.Info("Iniciando aplicação", "env", cfg.App.Env)

	database, err := db.NewConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao banco: %w", err)
	}

	repos := repository.NewRepositories(database)

	if err := repos.Migrate(context.Background()); err != nil {
		return nil, fmt.Errorf("erro ao executar migrações: %w", err)
	}

	authManager := auth.NewManager(repos.User)
	dispatcher := relay.NewDispatcher(cfg.Relay.Timeout)
	avatars := storage.NewAvatarStore(cfg.Storage)

	handler := router.NewRouter(cfg, repos, authManager, dispatcher, avatars)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &App{
		config: cfg,
		repos:  repos,
		server: server,
	}, nil
}

func (a *App) Run() error {
	appLogger := logger.WithComponent("server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		appLogger.Info("Servidor iniciado", "porta", a.config.Server.Port, "health", fmt.Sprintf("http://localhost:%d/health", a.config.Server.Port))

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Erro ao iniciar servidor", "error", err)
		}
	}()

	<-quit
	appLogger.Info("🛑 Parando servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		appLogger.Error("Erro ao parar servidor", "error", err)
		return err
	}

	logger.Info("Servidor parado")
	return nil
}

func (a *App) Close() error {
	if a.repos != nil {
		if err := a.repos.Close(); err != nil {
			logger.Error("Erro ao fechar conexões do banco", "error", err)
		}
	}

	return nil
}
