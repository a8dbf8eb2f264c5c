package sales

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesfeed/feeddomain"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type SalesService interface {
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
	AddSale(ctx context.Context, record domain.SaleRecord) (domain.SaleRecord, error)
}

type Service struct {
	SaleRepository repository.SaleRepository
}

func NewService(saleRepository repository.SaleRepository) SalesService {
	return &Service{
		SaleRepository: saleRepository,
	}
}

func (s *Service) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	records, err := s.SaleRepository.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar vendas")
	}
	return records, nil
}

// AddSale valida o registro com as mesmas regras da leitura da fonte antes de gravar
func (s *Service) AddSale(ctx context.Context, record domain.SaleRecord) (domain.SaleRecord, error) {
	if err := feeddomain.ValidateRecord(0, record); err != nil {
		logrus.WithError(err).WithField("buyer_name", record.BuyerName).Warn("Venda rejeitada")
		return domain.SaleRecord{}, err
	}

	saved, err := s.SaleRepository.Add(ctx, record)
	if err != nil {
		return domain.SaleRecord{}, errors.Wrap(err, "erro ao gravar venda")
	}

	logrus.WithFields(logrus.Fields{
		"sale_id":     saved.ID,
		"sale_total":  saved.SaleTotal,
		"credit_card": saved.CreditCard,
	}).Info("Venda registrada")

	return saved, nil
}
