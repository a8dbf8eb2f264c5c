package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesfeed/feeddomain"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// seq preserva a ordem de inserção, usada no desempate do maior comprador
const createSalesTable = `
CREATE TABLE IF NOT EXISTS sales (
	seq         BIGSERIAL,
	id          TEXT PRIMARY KEY,
	sale_total  NUMERIC(14, 2) NOT NULL CHECK (sale_total >= 0),
	credit_card BOOLEAN NOT NULL DEFAULT FALSE,
	buyer_name  TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const createSalesSeqIndex = `CREATE UNIQUE INDEX IF NOT EXISTS sales_seq_idx ON sales (seq)`

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

// loadSeed lê o arquivo de vendas com as mesmas regras da fonte do dashboard
func loadSeed(path string) ([]domain.SaleRecord, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler %s", path)
	}

	records, err := feeddomain.Decode(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "arquivo %s inválido", path)
	}

	return records, nil
}

func createSchema(ctx context.Context, conn postgres.Queryer) error {
	for _, stmt := range []string{createSalesTable, createSalesSeqIndex} {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "erro ao criar tabela sales")
		}
	}
	return nil
}

func insertSales(ctx context.Context, conn postgres.Conn, records []domain.SaleRecord) error {
	logrus.WithField("records", len(records)).Info("Iniciando inserção de vendas")
	startTime := time.Now()

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		repo := repository.NewSaleRepository(tx)
		for i, record := range records {
			if _, err := repo.Add(ctx, record); err != nil {
				return errors.Wrapf(err, "erro ao inserir venda [%d/%d]", i+1, len(records))
			}
			if i > 0 && i%100 == 0 {
				logrus.Infof("Progresso: %d/%d vendas processadas", i+1, len(records))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"records":  len(records),
		"duration": time.Since(startTime).String(),
	}).Info("Inserção de vendas concluída")
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	seedPath := cfg.SalesSource.FilePath
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}

	records, err := loadSeed(seedPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar vendas")
	}

	ctx := context.Background()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := createSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar esquema")
	}

	if err := insertSales(ctx, conn, records); err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir vendas; nenhuma venda foi gravada")
	}
}
