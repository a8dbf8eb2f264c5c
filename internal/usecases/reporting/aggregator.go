// Package reporting contém as agregações puras sobre registros de venda
package reporting

import "github.com/vfg2006/sales-dashboard-api/internal/domain"

// TotalSales soma o valor de todas as vendas
func TotalSales(records []domain.SaleRecord) float64 {
	var total float64
	for _, sale := range records {
		total += sale.SaleTotal
	}
	return total
}

// TotalCashSales soma as vendas pagas sem cartão de crédito
func TotalCashSales(records []domain.SaleRecord) float64 {
	var total float64
	for _, sale := range records {
		if !sale.CreditCard {
			total += sale.SaleTotal
		}
	}
	return total
}

// TotalCreditSales soma as vendas pagas com cartão de crédito
func TotalCreditSales(records []domain.SaleRecord) float64 {
	var total float64
	for _, sale := range records {
		if sale.CreditCard {
			total += sale.SaleTotal
		}
	}
	return total
}

// TopBuyer agrupa as vendas por comprador e devolve o de maior soma.
// Os grupos são visitados na ordem em que o comprador aparece pela primeira vez
// e só um total estritamente maior substitui o atual, então o primeiro a atingir
// o máximo vence. A entrada vazia devolve {"", 0}.
func TopBuyer(records []domain.SaleRecord) domain.TopBuyer {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, sale := range records {
		if _, seen := totals[sale.BuyerName]; !seen {
			order = append(order, sale.BuyerName)
		}
		totals[sale.BuyerName] += sale.SaleTotal
	}

	top := domain.TopBuyer{BuyerName: "", SaleTotal: 0}
	for _, buyer := range order {
		if totals[buyer] > top.SaleTotal {
			top = domain.TopBuyer{BuyerName: buyer, SaleTotal: totals[buyer]}
		}
	}

	return top
}

// Summarize calcula os quatro valores do dashboard de uma vez
func Summarize(records []domain.SaleRecord) domain.SalesSummary {
	return domain.SalesSummary{
		TotalSales:       TotalSales(records),
		TotalCashSales:   TotalCashSales(records),
		TotalCreditSales: TotalCreditSales(records),
		TopBuyer:         TopBuyer(records),
	}
}
