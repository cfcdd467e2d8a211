package domain

import "time"

// DailyRecord representa uma observação diária de vendas por categoria.
// Os valores monetários são armazenados em centavos para evitar
// imprecisão de ponto flutuante nas somas.
type DailyRecord struct {
	ID            int64
	Date          time.Time
	Category      string
	SalesCents    int64
	ExpensesCents int64
	UnitsSold     int64
	CreatedAt     time.Time
}

// Amount converte um valor em centavos para o valor monetário decimal.
func Amount(cents int64) float64 {
	return float64(cents) / 100
}
