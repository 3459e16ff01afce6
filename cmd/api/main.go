package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nachobar3/perfectstore-app/infrastructure/database/postgres"
	"github.com/nachobar3/perfectstore-app/infrastructure/integrator/assistant"
	"github.com/nachobar3/perfectstore-app/infrastructure/repository"
	"github.com/nachobar3/perfectstore-app/internal/api"
	"github.com/nachobar3/perfectstore-app/internal/config"
	"github.com/nachobar3/perfectstore-app/internal/scheduler"
	"github.com/nachobar3/perfectstore-app/internal/usecases/assisting"
	"github.com/nachobar3/perfectstore-app/internal/usecases/authenticating"
	"github.com/nachobar3/perfectstore-app/internal/usecases/dashboarding"
)

func main() {
	// Inicializa la configuración de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define el nivel de log según la configuración
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	sellOutRepo := repository.NewSellOutRepository(pgConn)
	marketShareRepo := repository.NewMarketShareRepository(pgConn)
	perfectStoreRepo := repository.NewPerfectStoreRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)
	catalogRepo := repository.NewCatalogRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	dashboardService := dashboarding.NewService(
		sellOutRepo,
		marketShareRepo,
		perfectStoreRepo,
		alertRepo,
	)

	assistantGateway := assistant.NewGateway(cfg)
	assistantService := assisting.NewService(
		assistantGateway,
		sellOutRepo,
		marketShareRepo,
		perfectStoreRepo,
		alertRepo,
		catalogRepo,
	)

	// Inicializa el detector programado de alertas comerciales
	alertDetectionService := scheduler.NewAlertDetectionService(
		sellOutRepo,
		alertRepo,
		cfg,
	)

	if err := alertDetectionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de detección de alertas")
	} else {
		logrus.Info("Agendador de detección de alertas iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		assistantService,
		authenticator,
		alertRepo,
		alertDetectionService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.Connect(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar a PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
