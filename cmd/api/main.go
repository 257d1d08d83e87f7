package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/ledger"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/ledger/ledgerclient"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/notifier"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/notifier/notifierclient"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/telemetry"
	"github.com/vfg2006/campaign-stop-service/infrastructure/integrator/telemetry/telemetryclient"
	"github.com/vfg2006/campaign-stop-service/infrastructure/repository"
	"github.com/vfg2006/campaign-stop-service/internal/api"
	"github.com/vfg2006/campaign-stop-service/internal/api/handler"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/scheduler"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/estimating"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/refreshing"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/rundates"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/stopping"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/validating"
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

	campaignRepo := repository.NewCampaignRepository(pgConn)
	stateRepo := repository.NewCampaignStopStateRepository(pgConn)
	spendRepo := repository.NewRealtimeSpendRepository(pgConn)
	auditRepo := repository.NewAuditLogRepository(pgConn)
	queueRepo := repository.NewUpdateQueueRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	ledgerClient := ledgerclient.NewClient(cfg)
	ledgerIntegrator := ledger.New(cfg, ledgerClient)

	telemetryClient := telemetryclient.NewClient(cfg)
	telemetryIntegrator := telemetry.New(cfg, telemetryClient)

	notifierClient := notifierclient.NewClient(cfg)
	notifierIntegrator := notifier.New(cfg, notifierClient)

	estimator := estimating.NewService(cfg.CampaignStop, ledgerIntegrator, spendRepo)
	refresher := refreshing.NewService(cfg.CampaignStop, telemetryIntegrator, campaignRepo, spendRepo)

	stateManager := stopping.NewStateManager(pgConn, stateRepo, notifierIntegrator)
	stoppingService := stopping.NewService(cfg.CampaignStop, pgConn, campaignRepo, auditRepo, estimator, stateManager)
	marker := stopping.NewMarker(cfg.CampaignStop, pgConn, campaignRepo, spendRepo, auditRepo, estimator, refresher, stateManager)
	datesService := rundates.NewService(cfg.CampaignStop, pgConn, ledgerIntegrator, estimator, auditRepo, stateManager)
	budgetValidator := validating.NewService(pgConn, campaignRepo, auditRepo, estimator, ledgerIntegrator)

	// Inicializa os agendadores das rotinas de controle
	depletionCheckSyncService := scheduler.NewDepletionCheckSyncService(
		stoppingService,
		cfg,
	)

	almostDepletedSyncService := scheduler.NewAlmostDepletedSyncService(
		campaignRepo,
		marker,
		cfg,
	)

	updateHandlerSyncService := scheduler.NewUpdateHandlerSyncService(
		queueRepo,
		campaignRepo,
		stoppingService,
		marker,
		datesService,
		stateManager,
		cfg,
	)

	housekeepingSyncService := scheduler.NewHousekeepingSyncService(
		auditRepo,
		spendRepo,
		cfg,
	)

	// Inicia os agendadores em background
	if err := depletionCheckSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do laço de esgotamento")
	} else {
		logrus.Info("Agendador do laço de esgotamento iniciado com sucesso")
	}

	if err := almostDepletedSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do marcador de quase-esgotamento")
	} else {
		logrus.Info("Agendador do marcador de quase-esgotamento iniciado com sucesso")
	}

	if err := updateHandlerSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do tratador da fila de atualização")
	} else {
		logrus.Info("Agendador do tratador da fila de atualização iniciado com sucesso")
	}

	if err := housekeepingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de retenção")
	} else {
		logrus.Info("Agendador de limpeza de retenção iniciado com sucesso")
	}

	cronServices := handler.CronJobServices{
		DepletionCheckSyncService: depletionCheckSyncService,
		AlmostDepletedSyncService: almostDepletedSyncService,
		UpdateHandlerSyncService:  updateHandlerSyncService,
		HousekeepingSyncService:   housekeepingSyncService,
	}

	server, err := api.New(
		cfg,
		authenticator,
		stoppingService,
		stateManager,
		budgetValidator,
		queueRepo,
		auditRepo,
		cronServices,
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
