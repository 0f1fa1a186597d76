package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/mail-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign"
	"github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/acclient"
	"github.com/vfg2006/mail-insights-api/infrastructure/messaging/rabbitmq"
	"github.com/vfg2006/mail-insights-api/infrastructure/repository"
	"github.com/vfg2006/mail-insights-api/internal/api"
	"github.com/vfg2006/mail-insights-api/internal/config"
	"github.com/vfg2006/mail-insights-api/internal/scheduler"
	"github.com/vfg2006/mail-insights-api/internal/usecases/account"
	"github.com/vfg2006/mail-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/mail-insights-api/internal/usecases/syncing"
	"github.com/vfg2006/mail-insights-api/pkg/log"
	"github.com/vfg2006/mail-insights-api/pkg/secret"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	sealer, err := secret.NewSealer(cfg.SecretKey)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar cifragem das API keys")
	}

	accountRepo := repository.NewAccountRepository(pgConn, sealer)
	listRepo := repository.NewListRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	automationRepo := repository.NewAutomationRepository(pgConn)
	messageRepo := repository.NewMessageRepository(pgConn)
	syncJobRepo := repository.NewSyncJobRepository(pgConn)

	factory := acclient.NewFactory(cfg.ActiveCampaign)
	integrator := activecampaign.New()

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
	if err != nil {
		logrus.WithError(err).Warn("RabbitMQ indisponível, eventos de sincronização serão descartados")
		publisher = rabbitmq.NoopPublisher{}
	}
	defer publisher.Close()

	syncService := syncing.NewService(
		syncing.Repositories{
			Accounts:    accountRepo,
			Lists:       listRepo,
			Campaigns:   campaignRepo,
			Automations: automationRepo,
			Messages:    messageRepo,
			Jobs:        syncJobRepo,
		},
		factory,
		integrator,
		publisher,
		cfg,
	)

	reportService := reporting.NewService(
		reporting.Repositories{
			Accounts:    accountRepo,
			Lists:       listRepo,
			Campaigns:   campaignRepo,
			Automations: automationRepo,
			Jobs:        syncJobRepo,
		},
		factory,
		cfg,
	)

	accountService := account.NewService(accountRepo, factory, integrator)

	autoSyncService := scheduler.NewAutoSyncService(syncService, cfg)

	// Inicia o agendador em background
	if err := autoSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização automática")
	} else {
		logrus.Info("Agendador de sincronização automática iniciado com sucesso")
	}

	server := api.New(cfg, api.Services{
		DB:       pgConn,
		Accounts: accountService,
		Syncer:   syncService,
		Reporter: reportService,
		AutoSync: autoSyncService,
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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
