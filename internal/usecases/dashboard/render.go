package dashboard

import (
	"errors"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Títulos dos cards do dashboard
const (
	TitleTotalSales  = "Total de Vendas"
	TitleCashSales   = "Vendas à Vista"
	TitleCreditSales = "Vendas no Crédito"
	TitleTopBuyer    = "Comprador com Mais Vendas"
)

const (
	MessageLoading       = "Carregando vendas..."
	MessageNetwork       = "Não foi possível conectar à fonte de vendas."
	MessageParse         = "A fonte de vendas retornou dados em formato inválido."
	MessageInvalidRecord = "A fonte de vendas contém registros inválidos."
	MessageUnknown       = "Não foi possível carregar as vendas."
)

type Card struct {
	Title  string   `json:"title"`
	Values []string `json:"values"`
}

// Panel é o que a camada de renderização consome
type Panel struct {
	Status    Status               `json:"status"`
	Message   string               `json:"message,omitempty"`
	ErrorCode string               `json:"error_code,omitempty"`
	Summary   *domain.SalesSummary `json:"summary,omitempty"`
	Cards     []Card               `json:"cards,omitempty"`
}

// Render monta o painel a partir do estado. Em Error nunca mostra valores zerados.
func Render(state State) Panel {
	switch state.Status {
	case StatusReady:
		if state.Summary == nil {
			return Panel{Status: StatusLoading, Message: MessageLoading}
		}
		s := state.Summary
		return Panel{
			Status:  StatusReady,
			Summary: s,
			Cards: []Card{
				{Title: TitleTotalSales, Values: []string{utils.FormatAmount(s.TotalSales)}},
				{Title: TitleCashSales, Values: []string{utils.FormatAmount(s.TotalCashSales)}},
				{Title: TitleCreditSales, Values: []string{utils.FormatAmount(s.TotalCreditSales)}},
				{Title: TitleTopBuyer, Values: []string{s.TopBuyer.BuyerName, utils.FormatAmount(s.TopBuyer.SaleTotal)}},
			},
		}
	case StatusError:
		return Panel{
			Status:    StatusError,
			Message:   errorMessage(state.Err),
			ErrorCode: domain.ErrorCode(state.Err),
		}
	}

	return Panel{Status: StatusLoading, Message: MessageLoading}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRecord):
		return MessageInvalidRecord
	case errors.Is(err, domain.ErrParse):
		return MessageParse
	case errors.Is(err, domain.ErrNetwork):
		return MessageNetwork
	}
	return MessageUnknown
}
