package domain

// StoreTotals agrega as somas brutas do armazenamento: valores em
// centavos e a contagem de dias distintos com registros.
type StoreTotals struct {
	TotalSalesCents    int64
	TotalExpensesCents int64
	TotalUnits         int64
	TradingDays        int64
}

// SummaryStats consolida as métricas de todo o armazenamento. Somas em
// centavos; médias e extremos derivados da série mensal em precisão
// completa.
type SummaryStats struct {
	TotalSalesCents    int64
	TotalExpensesCents int64
	TotalProfitCents   int64
	TotalUnits         int64
	TradingDays        int64
	AvgSales           float64
	AvgMargin          float64
	MaxSales           float64
	MinSales           float64
	AvgUnitsPerDay     float64
}

// SummaryStatsResponse é a representação das estatísticas na resposta da
// API, com valores monetários arredondados para duas casas decimais.
type SummaryStatsResponse struct {
	TotalSales     float64 `json:"total_sales"`
	TotalExpenses  float64 `json:"total_expenses"`
	TotalProfit    float64 `json:"total_profit"`
	AvgSales       float64 `json:"avg_sales"`
	AvgMargin      float64 `json:"avg_margin"`
	MaxSales       float64 `json:"max_sales"`
	MinSales       float64 `json:"min_sales"`
	TradingDays    int64   `json:"trading_days"`
	TotalUnits     int64   `json:"total_units"`
	AvgUnitsPerDay float64 `json:"avg_units_per_day"`
}
