package sales

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_AddSale(t *testing.T) {
	tests := []struct {
		name      string
		record    domain.SaleRecord
		setup     func(repo *mocks.MockSaleRepository)
		want      domain.SaleRecord
		wantErrIs error
	}{
		{
			name:   "venda válida é gravada",
			record: domain.SaleRecord{SaleTotal: 100, CreditCard: true, BuyerName: "A"},
			setup: func(repo *mocks.MockSaleRepository) {
				repo.EXPECT().
					Add(gomock.Any(), domain.SaleRecord{SaleTotal: 100, CreditCard: true, BuyerName: "A"}).
					Return(domain.SaleRecord{ID: "S001", SaleTotal: 100, CreditCard: true, BuyerName: "A"}, nil)
			},
			want: domain.SaleRecord{ID: "S001", SaleTotal: 100, CreditCard: true, BuyerName: "A"},
		},
		{
			name:      "total negativo não chega ao repositório",
			record:    domain.SaleRecord{SaleTotal: -1, BuyerName: "A"},
			setup:     func(repo *mocks.MockSaleRepository) {},
			wantErrIs: domain.ErrInvalidRecord,
		},
		{
			name:      "total NaN é rejeitado",
			record:    domain.SaleRecord{SaleTotal: math.NaN(), BuyerName: "A"},
			setup:     func(repo *mocks.MockSaleRepository) {},
			wantErrIs: domain.ErrInvalidRecord,
		},
		{
			name:      "total infinito é rejeitado",
			record:    domain.SaleRecord{SaleTotal: math.Inf(1), BuyerName: "A"},
			setup:     func(repo *mocks.MockSaleRepository) {},
			wantErrIs: domain.ErrInvalidRecord,
		},
		{
			name:   "erro do repositório é propagado",
			record: domain.SaleRecord{SaleTotal: 10, BuyerName: "B"},
			setup: func(repo *mocks.MockSaleRepository) {
				repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(domain.SaleRecord{}, errors.New("db down"))
			},
			wantErrIs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockSaleRepository(ctrl)
			tt.setup(repo)

			got, err := NewService(repo).AddSale(context.Background(), tt.record)

			switch {
			case tt.wantErrIs != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrIs)
				var recordErr *domain.RecordError
				require.ErrorAs(t, err, &recordErr)
				assert.Equal(t, "saleTotal", recordErr.Field)
			case tt.want.ID == "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), "db down")
				assert.NotErrorIs(t, err, domain.ErrInvalidRecord)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestService_ListSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSaleRepository(ctrl)

	records := []domain.SaleRecord{
		{ID: "S001", SaleTotal: 100, BuyerName: "A"},
		{ID: "S002", SaleTotal: 200, CreditCard: true, BuyerName: "B"},
	}
	repo.EXPECT().List(gomock.Any()).Return(records, nil)

	got, err := NewService(repo).ListSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestService_ListSalesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSaleRepository(ctrl)
	cause := errors.New("timeout")
	repo.EXPECT().List(gomock.Any()).Return(nil, cause)

	_, err := NewService(repo).ListSales(context.Background())
	assert.ErrorIs(t, err, cause)
}

func TestService_WithMemoryRepository(t *testing.T) {
	svc := NewService(repository.NewMemorySaleRepository())
	ctx := context.Background()

	first, err := svc.AddSale(ctx, domain.SaleRecord{SaleTotal: 100, BuyerName: "A"})
	require.NoError(t, err)
	_, err = svc.AddSale(ctx, domain.SaleRecord{SaleTotal: -5, BuyerName: "B"})
	require.ErrorIs(t, err, domain.ErrInvalidRecord)

	list, err := svc.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first, list[0])
}
