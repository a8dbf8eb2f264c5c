package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// MemorySaleRepository mantém as vendas em memória, uma instância por execução
type MemorySaleRepository struct {
	mu    sync.RWMutex
	sales []domain.SaleRecord
}

func NewMemorySaleRepository(seed ...domain.SaleRecord) *MemorySaleRepository {
	repo := &MemorySaleRepository{sales: make([]domain.SaleRecord, 0, len(seed))}
	for _, record := range seed {
		repo.add(record)
	}
	return repo
}

func (r *MemorySaleRepository) List(ctx context.Context) ([]domain.SaleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SaleRecord, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

func (r *MemorySaleRepository) Add(ctx context.Context, record domain.SaleRecord) (domain.SaleRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.SaleRecord{}, err
	}
	return r.add(record), nil
}

// add atribui ids sequenciais S001, S002, ...
func (r *MemorySaleRepository) add(record domain.SaleRecord) domain.SaleRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = fmt.Sprintf("S%03d", len(r.sales)+1)
	r.sales = append(r.sales, record)
	return record
}
