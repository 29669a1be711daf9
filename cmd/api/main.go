package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-builder-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-builder-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/campaign-builder-api/infrastructure/integrator/meta"
	"github.com/vfg2006/campaign-builder-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-builder-api/infrastructure/repository"
	"github.com/vfg2006/campaign-builder-api/internal/api"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"github.com/vfg2006/campaign-builder-api/internal/scheduler"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/building"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/contexting"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/deciding"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/executing"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/planning"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/resolving"
	"github.com/vfg2006/campaign-builder-api/internal/usecases/scoring"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	creativeRepo := repository.NewCreativeRepository(pgConn)
	creativeMetricRepo := repository.NewCreativeMetricRepository(pgConn)
	directionRepo := repository.NewDirectionRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	tokenManager := metaclient.NewTokenManager(cfg)
	go tokenManager.StartAutoRefresh()
	defer tokenManager.StopAutoRefresh()

	metaClient := metaclient.NewClient(cfg, tokenManager)
	metaIntegrator := meta.New(cfg, metaClient)

	geminiIntegrator, err := gemini.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o motor de decisão")
	}

	resolver := resolving.NewService(cfg, creativeMetricRepo, metaIntegrator)
	scorer := scoring.NewService(creativeMetricRepo, creativeRepo, metaIntegrator)
	ranker := contexting.NewService()
	decider := deciding.NewService(cfg, geminiIntegrator)
	planner := planning.NewService()
	executor := executing.NewService(cfg, metaIntegrator)

	buildService := building.NewService(
		cfg,
		accountRepo,
		creativeRepo,
		directionRepo,
		resolver,
		scorer,
		ranker,
		decider,
		planner,
		executor,
		metaIntegrator,
	)

	// Inicializa o agendador de sincronização do cache de métricas
	creativeMetricsSyncService := scheduler.NewCreativeMetricsSyncService(
		accountRepo,
		creativeRepo,
		creativeMetricRepo,
		metaIntegrator,
		cfg,
	)

	if err := creativeMetricsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de métricas de criativos")
	} else {
		logrus.Info("Agendador de sincronização de métricas de criativos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		buildService,
		accountRepo,
		authenticator,
		creativeMetricsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
