package salesfeed

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesfeed/feedclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesfeed/feeddomain"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_source.go -package=mocks

// Source é a fonte de vendas do dashboard. Cada chamada faz uma única tentativa.
type Source interface {
	FetchSales(ctx context.Context) ([]domain.SaleRecord, error)
}

// New escolhe a fonte de acordo com SALES_SOURCE_KIND
func New(cfg *config.Config, repo repository.SaleRepository) (Source, error) {
	logrus.WithField("kind", cfg.SalesSource.Kind).Info("Configurando fonte de vendas")

	switch cfg.SalesSource.Kind {
	case config.SourceKindHTTP:
		return feedclient.NewClient(cfg.SalesSource), nil
	case config.SourceKindFile:
		return NewFileSource(cfg.SalesSource.FilePath), nil
	case config.SourceKindRepository:
		return NewRepositorySource(repo), nil
	}

	return nil, fmt.Errorf("fonte de vendas desconhecida: %q", cfg.SalesSource.Kind)
}

// FileSource lê um arquivo JSON estático com a lista de vendas
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) FetchSales(ctx context.Context) ([]domain.SaleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(s.path)
	if err != nil {
		return nil, domain.NewNetworkError(fmt.Sprintf("erro ao ler %s: %v", s.path, err))
	}

	return feeddomain.Decode(payload)
}

// RepositorySource expõe o repositório de vendas como fonte do dashboard
type RepositorySource struct {
	repo repository.SaleRepository
}

func NewRepositorySource(repo repository.SaleRepository) *RepositorySource {
	return &RepositorySource{repo: repo}
}

func (s *RepositorySource) FetchSales(ctx context.Context) ([]domain.SaleRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, domain.NewNetworkError(fmt.Sprintf("erro ao listar vendas: %v", err))
	}
	return records, nil
}
