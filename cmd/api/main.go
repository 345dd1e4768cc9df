package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/meta"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/api"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/scheduler"
	"github.com/vfg2006/social-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/social-insights-api/internal/usecases/attributing"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-insights-api/internal/usecases/exporting"
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

	userRepo := repository.NewUserRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	postRepo := repository.NewPostRepository(pgConn)
	metricRepo := repository.NewMetricSnapshotRepository(pgConn)
	followerRepo := repository.NewFollowerSnapshotRepository(pgConn)
	adsCacheRepo := repository.NewAdsCacheRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Carrega o mapa de atribuição versionado uma única vez na subida
	attributionMap, err := attributing.LoadConfig(cfg.Attribution.MapPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o mapa de atribuição")
	}

	logrus.WithFields(logrus.Fields{
		"version":          attributionMap.Version,
		"overrides":        len(attributionMap.Overrides),
		"account_defaults": len(attributionMap.AccountDefaults),
	}).Info("Mapa de atribuição carregado com sucesso")

	attributor := attributing.NewService(attributionMap)

	overviewer := aggregating.NewService(
		cfg,
		attributor,
		customerRepo,
		postRepo,
		metricRepo,
		followerRepo,
		adsCacheRepo,
	)

	exporter := exporting.NewService(overviewer)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	// Inicializa o agendador de sincronização do cache de anúncios
	adsSyncService := scheduler.NewAdsSyncService(
		adsCacheRepo,
		metaIntegrator,
		attributionMap,
		cfg,
	)

	if err := adsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do cache de anúncios")
	} else {
		logrus.Info("Agendador do cache de anúncios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		overviewer,
		exporter,
		attributor,
		customerRepo,
		metricRepo,
		authenticator,
		adsSyncService,
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
