// Package dashboard orquestra a busca de vendas e expõe o resumo do dashboard
// como uma máquina de estados independente de qualquer camada de renderização.
package dashboard

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// State é o estado observável do dashboard.
// Summary só existe em Ready e Err só existe em Error.
type State struct {
	Status  Status
	Summary *domain.SalesSummary
	Err     error
}

// Event é uma transição pedida ao dashboard
type Event interface {
	isEvent()
}

// Activated reinicia o dashboard (montagem ou novo disparo externo)
type Activated struct{}

// Loaded entrega o resumo calculado a partir da busca
type Loaded struct {
	Summary domain.SalesSummary
}

// Failed informa que a busca falhou
type Failed struct {
	Err error
}

func (Activated) isEvent() {}
func (Loaded) isEvent()    {}
func (Failed) isEvent()    {}

// Reduce aplica um evento ao estado. Loaded e Failed só valem em Loading;
// Error permanece até o próximo Activated.
func Reduce(state State, event Event) State {
	switch e := event.(type) {
	case Activated:
		return State{Status: StatusLoading}
	case Loaded:
		if state.Status != StatusLoading {
			return state
		}
		summary := e.Summary
		return State{Status: StatusReady, Summary: &summary}
	case Failed:
		if state.Status != StatusLoading {
			return state
		}
		return State{Status: StatusError, Err: e.Err}
	}
	return state
}
