package feedclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesfeed/feeddomain"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const defaultMaxFailures = 5

// Client busca a lista de vendas em uma URL JSON, uma tentativa por chamada
type Client struct {
	httpClient *http.Client
	url        string
	breaker    *gobreaker.CircuitBreaker
}

// NewClient cria o cliente HTTP da fonte de vendas
func NewClient(cfg config.SalesSource) *Client {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = defaultMaxFailures
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "sales-feed",
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// Cancelamento vem de quem chamou, não é falha da fonte
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuito da fonte de vendas mudou de estado")
		},
	})

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:     cfg.URL,
		breaker: breaker,
	}
}

// FetchSales faz um único GET na fonte e valida o payload.
// Não há retry nem cache.
func (c *Client) FetchSales(ctx context.Context) ([]domain.SaleRecord, error) {
	startTime := time.Now()

	body, err := c.breaker.Execute(func() (interface{}, error) {
		return c.get(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, domain.NewNetworkError(fmt.Sprintf("circuito aberto: %v", err))
		}
		return nil, err
	}

	records, err := feeddomain.Decode(body.([]byte))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"url":      c.url,
		"records":  len(records),
		"duration": time.Since(startTime).String(),
	}).Debug("Vendas obtidas da fonte HTTP")

	return records, nil
}

func (c *Client) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, domain.NewNetworkError(fmt.Sprintf("erro ao criar a requisição: %v", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, domain.NewNetworkError(fmt.Sprintf("erro ao executar a requisição: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewNetworkError(fmt.Sprintf("requisição falhou com status: %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, domain.NewNetworkError(fmt.Sprintf("erro ao ler a resposta: %v", err))
	}

	return body, nil
}
