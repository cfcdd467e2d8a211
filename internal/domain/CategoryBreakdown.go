package domain

// CategoryStat agrega as vendas de uma categoria em todo o período.
type CategoryStat struct {
	Category           string
	TotalSalesCents    int64
	TotalExpensesCents int64
	ProfitCents        int64
	TransactionCount   int64
}

// CategorySummary é a representação de uma categoria na resposta da API,
// ordenada por vendas decrescentes.
type CategorySummary struct {
	Category         string  `json:"category"`
	TotalSales       float64 `json:"total_sales"`
	TotalExpenses    float64 `json:"total_expenses"`
	Profit           float64 `json:"profit"`
	TransactionCount int64   `json:"transaction_count"`
}
