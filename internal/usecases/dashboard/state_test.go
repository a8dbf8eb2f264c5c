package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestReduce(t *testing.T) {
	summary := domain.SalesSummary{TotalSales: 10, TotalCashSales: 10, TopBuyer: domain.TopBuyer{BuyerName: "A", SaleTotal: 10}}
	ready := State{Status: StatusReady, Summary: &summary}
	failed := State{Status: StatusError, Err: domain.ErrNetwork}
	loading := State{Status: StatusLoading}

	tests := []struct {
		name  string
		state State
		event Event
		want  State
	}{
		{name: "Loading -> Ready", state: loading, event: Loaded{Summary: summary}, want: ready},
		{name: "Loading -> Error", state: loading, event: Failed{Err: domain.ErrNetwork}, want: failed},
		{name: "Ready ignora Loaded", state: ready, event: Loaded{Summary: domain.SalesSummary{TotalSales: 99}}, want: ready},
		{name: "Ready ignora Failed", state: ready, event: Failed{Err: domain.ErrParse}, want: ready},
		{name: "Error é terminal para Loaded", state: failed, event: Loaded{Summary: summary}, want: failed},
		{name: "Error é terminal para Failed", state: failed, event: Failed{Err: domain.ErrParse}, want: failed},
		{name: "Activated sai de Error", state: failed, event: Activated{}, want: loading},
		{name: "Activated sai de Ready", state: ready, event: Activated{}, want: loading},
		{name: "Activated em Loading", state: loading, event: Activated{}, want: loading},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.state, tt.event))
		})
	}
}

func TestReduce_DoesNotAliasSummary(t *testing.T) {
	summary := domain.SalesSummary{TotalSales: 1}
	next := Reduce(State{Status: StatusLoading}, Loaded{Summary: summary})

	summary.TotalSales = 2
	assert.Equal(t, 1.0, next.Summary.TotalSales)
}
