package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestMemorySaleRepository_AddAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySaleRepository()

	first, err := repo.Add(ctx, domain.SaleRecord{SaleTotal: 100, BuyerName: "A"})
	require.NoError(t, err)
	second, err := repo.Add(ctx, domain.SaleRecord{SaleTotal: 200, CreditCard: true, BuyerName: "B"})
	require.NoError(t, err)

	assert.Equal(t, "S001", first.ID)
	assert.Equal(t, "S002", second.ID)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.SaleRecord{first, second}, records)
}

func TestMemorySaleRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySaleRepository(domain.SaleRecord{SaleTotal: 10, BuyerName: "A"})

	records, err := repo.List(ctx)
	require.NoError(t, err)
	records[0].SaleTotal = 999

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, again[0].SaleTotal)
}

func TestMemorySaleRepository_InstancesAreIndependent(t *testing.T) {
	ctx := context.Background()
	a := NewMemorySaleRepository()
	b := NewMemorySaleRepository()

	_, err := a.Add(ctx, domain.SaleRecord{SaleTotal: 1, BuyerName: "A"})
	require.NoError(t, err)

	records, err := b.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMemorySaleRepository_ConcurrentAdd(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySaleRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Add(ctx, domain.SaleRecord{SaleTotal: 1, BuyerName: "A"})
		}()
	}
	wg.Wait()

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 50)

	ids := make(map[string]struct{})
	for _, r := range records {
		ids[r.ID] = struct{}{}
	}
	assert.Len(t, ids, 50)
}

func TestMemorySaleRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewMemorySaleRepository()
	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.Add(ctx, domain.SaleRecord{SaleTotal: 1, BuyerName: "A"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaleQueries(t *testing.T) {
	query, args, err := listSalesQuery()
	require.NoError(t, err)
	assert.Equal(t, "SELECT s.id, s.sale_total, s.credit_card, s.buyer_name FROM sales s ORDER BY s.seq ASC", query)
	assert.Empty(t, args)

	query, args, err = insertSaleQuery(domain.SaleRecord{ID: "abc123", SaleTotal: 99.9, CreditCard: true, BuyerName: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO sales (id,sale_total,credit_card,buyer_name) VALUES ($1,$2,$3,$4) RETURNING id", query)
	assert.Equal(t, []interface{}{"abc123", 99.9, true, "Ana"}, args)
}
