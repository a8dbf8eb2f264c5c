package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesfeed"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sales"
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

	saleRepo, closeRepo := saleRepository(ctx, cfg)
	defer closeRepo()

	source, err := salesfeed.New(cfg, saleRepo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a fonte de vendas")
	}

	salesService := sales.NewService(saleRepo)

	view := dashboard.NewView(source, dashboard.WithObserver(func(state dashboard.State) {
		logrus.WithField("status", state.Status).Debug("Estado do dashboard atualizado")
	}))

	// Montagem: uma busca inicial
	view.Activate(ctx)

	dashboardRefreshService := scheduler.NewDashboardRefreshService(view, cfg)
	if err := dashboardRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dashboard")
	} else {
		logrus.Info("Agendador de atualização do dashboard iniciado com sucesso")
	}

	server, err := api.New(cfg, view, salesService, dashboardRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// saleRepository escolhe o repositório de vendas de acordo com SALES_REPOSITORY
func saleRepository(ctx context.Context, cfg *config.Config) (repository.SaleRepository, func()) {
	if cfg.App.Repository == config.RepositoryPostgres {
		pgConn := pgconn(ctx, cfg.Database)
		return repository.NewSaleRepository(pgConn), func() { _ = pgConn.Close() }
	}

	logrus.Info("Usando repositório de vendas em memória")
	return repository.NewMemorySaleRepository(), func() {}
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
