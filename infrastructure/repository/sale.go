package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=sale.go -destination=mocks/mock_sale.go -package=mocks

const (
	salesTable = "sales s"
)

// SaleRepository guarda os registros de venda. List devolve as vendas na
// ordem em que foram adicionadas.
type SaleRepository interface {
	List(ctx context.Context) ([]domain.SaleRecord, error)
	Add(ctx context.Context, record domain.SaleRecord) (domain.SaleRecord, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) List(ctx context.Context) ([]domain.SaleRecord, error) {
	query, args, err := listSalesQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SaleRecord, 0)
	for rows.Next() {
		var record domain.SaleRecord
		if err := rows.Scan(&record.ID, &record.SaleTotal, &record.CreditCard, &record.BuyerName); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *saleRepository) Add(ctx context.Context, record domain.SaleRecord) (domain.SaleRecord, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return domain.SaleRecord{}, fmt.Errorf("erro ao gerar id da venda: %w", err)
	}
	record.ID = id

	query, args, err := insertSaleQuery(record)
	if err != nil {
		return domain.SaleRecord{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&record.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return domain.SaleRecord{}, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return domain.SaleRecord{}, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return record, nil
}

func listSalesQuery() (string, []interface{}, error) {
	return squirrel.
		Select("s.id, s.sale_total, s.credit_card, s.buyer_name").
		From(salesTable).
		OrderBy("s.seq ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func insertSaleQuery(record domain.SaleRecord) (string, []interface{}, error) {
	return squirrel.StatementBuilder.
		Insert("sales").
		Columns("id", "sale_total", "credit_card", "buyer_name").
		Values(record.ID, record.SaleTotal, record.CreditCard, record.BuyerName).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
