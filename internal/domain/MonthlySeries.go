package domain

// MonthlyPoint representa a agregação de um mês do calendário ("2006-01").
// As somas ficam em centavos e a margem em precisão completa; o
// arredondamento acontece apenas na camada de apresentação.
type MonthlyPoint struct {
	Month              string
	TotalSalesCents    int64
	TotalExpensesCents int64
	TotalUnits         int64
	ProfitMarginPct    float64
}

// MonthlyRecord é a representação de um ponto mensal na resposta da API.
type MonthlyRecord struct {
	Month           string  `json:"month"`
	TotalSales      float64 `json:"total_sales"`
	TotalExpenses   float64 `json:"total_expenses"`
	TotalUnits      int64   `json:"total_units"`
	ProfitMarginPct float64 `json:"profit_margin_pct"`
}

// ProfitMarginPct calcula a margem de lucro percentual a partir de somas em
// centavos. Quando não há vendas a margem é definida como 0 em vez de
// falhar com divisão por zero.
func ProfitMarginPct(salesCents, expensesCents int64) float64 {
	if salesCents == 0 {
		return 0
	}

	return float64(salesCents-expensesCents) / float64(salesCents) * 100
}
