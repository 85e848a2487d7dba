package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gravora/metrics-api/infrastructure/database/postgres"
	"github.com/gravora/metrics-api/infrastructure/repository"
	"github.com/gravora/metrics-api/internal/api"
	"github.com/gravora/metrics-api/internal/config"
	"github.com/gravora/metrics-api/internal/scheduler"
	"github.com/gravora/metrics-api/internal/usecases/authenticating"
	"github.com/gravora/metrics-api/internal/usecases/companying"
	"github.com/gravora/metrics-api/internal/usecases/manualinput"
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
	companyRepo := repository.NewCompanyRepository(pgConn)
	manualInputRepo := repository.NewManualInputRepository(pgConn)
	channelInputRepo := repository.NewChannelInputRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	dailyMetricsRepo := repository.NewDailyMetricsRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	companyService := companying.NewService(companyRepo)
	manualInputService := manualinput.NewService(
		companyRepo,
		manualInputRepo,
		channelInputRepo,
		snapshotRepo,
		dailyMetricsRepo,
		cfg.Snapshot,
	)

	// Inicializa o agendador de limpeza de métricas antigas
	metricsCleanupService := scheduler.NewMetricsCleanupService(dailyMetricsRepo, cfg)

	if err := metricsCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de métricas")
	} else {
		logrus.Info("Agendador de limpeza de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		companyService,
		manualInputService,
		metricsCleanupService,
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
