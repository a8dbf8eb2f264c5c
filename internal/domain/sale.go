package domain

// SaleRecord representa uma venda individual recebida da fonte de dados
type SaleRecord struct {
	ID         string  `json:"id,omitempty"`
	SaleTotal  float64 `json:"saleTotal"`
	CreditCard bool    `json:"creditCard"`
	BuyerName  string  `json:"buyerName"`
}

// TopBuyer é o comprador com a maior soma de vendas
type TopBuyer struct {
	BuyerName string  `json:"buyerName"`
	SaleTotal float64 `json:"saleTotal"`
}

// SalesSummary reúne os quatro valores exibidos no dashboard.
// É recalculado por inteiro a cada busca, nunca atualizado incrementalmente.
type SalesSummary struct {
	TotalSales       float64  `json:"totalSales"`
	TotalCashSales   float64  `json:"totalCashSales"`
	TotalCreditSales float64  `json:"totalCreditSales"`
	TopBuyer         TopBuyer `json:"topBuyer"`
}
