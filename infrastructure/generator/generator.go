package generator

import (
	"math/rand"
	"time"

	"github.com/adityashm/data-analysis-dashboard/internal/domain"
)

// baseSeed fixa a semente do gerador. Somada ao ano, garante que o mesmo
// ano produza sempre o mesmo conjunto de registros.
const baseSeed int64 = 7_842_031

// Metas mensais em centavos (janeiro a dezembro). A soma dos registros
// diários de cada mês fecha exatamente nesses valores.
var (
	monthlySalesTargets = [12]int64{
		4_500_000, 5_200_000, 4_800_000, 6_100_000, 5_500_000, 6_700_000,
		7_200_000, 6_800_000, 7_500_000, 8_200_000, 8_800_000, 9_500_000,
	}
	monthlyExpenseTargets = [12]int64{
		3_000_000, 3_200_000, 3_100_000, 3_800_000, 3_500_000, 4_200_000,
		4_500_000, 4_300_000, 4_800_000, 5_200_000, 5_500_000, 6_000_000,
	}
)

// categoryProfile descreve a participação de uma categoria no faturamento
// e o ticket médio usado para derivar unidades vendidas.
type categoryProfile struct {
	name          string
	share         float64
	avgPriceCents int64
}

// As participações somam 1.0; a última categoria absorve o resto da
// divisão para que as metas mensais fechem sem sobras.
var categoryProfiles = []categoryProfile{
	{name: "Electronics", share: 0.35, avgPriceCents: 18_900},
	{name: "Clothing", share: 0.22, avgPriceCents: 7_490},
	{name: "Home & Garden", share: 0.18, avgPriceCents: 9_990},
	{name: "Sports", share: 0.15, avgPriceCents: 11_900},
	{name: "Books", share: 0.10, avgPriceCents: 3_490},
}

type SampleGenerator interface {
	GenerateYear(year int) []*domain.DailyRecord
}

type sampleGenerator struct {
	seed int64
}

func NewSampleGenerator() SampleGenerator {
	return &sampleGenerator{
		seed: baseSeed,
	}
}

// GenerateYear produz um registro por dia e por categoria para o ano
// informado. A saída é determinística: chamadas repetidas com o mesmo ano
// retornam exatamente os mesmos valores, na mesma ordem.
func (g *sampleGenerator) GenerateYear(year int) []*domain.DailyRecord {
	rng := rand.New(rand.NewSource(g.seed + int64(year)))

	records := make([]*domain.DailyRecord, 0, 366*len(categoryProfiles))

	for month := time.January; month <= time.December; month++ {
		days := daysInMonth(year, month)

		salesTarget := monthlySalesTargets[month-1]
		expenseTarget := monthlyExpenseTargets[month-1]

		salesByCategory := splitByCategory(salesTarget)
		expensesByCategory := splitByCategory(expenseTarget)

		for i, profile := range categoryProfiles {
			dailySales := spreadOverDays(rng, salesByCategory[i], days)
			dailyExpenses := spreadOverDays(rng, expensesByCategory[i], days)

			for day := 1; day <= days; day++ {
				records = append(records, &domain.DailyRecord{
					Date:          time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
					Category:      profile.name,
					SalesCents:    dailySales[day-1],
					ExpensesCents: dailyExpenses[day-1],
					UnitsSold:     dailySales[day-1] / profile.avgPriceCents,
				})
			}
		}
	}

	return records
}

// splitByCategory reparte um total em centavos entre as categorias
// conforme a participação de cada uma. A última categoria recebe o
// restante para preservar a soma exata.
func splitByCategory(total int64) []int64 {
	amounts := make([]int64, len(categoryProfiles))

	var assigned int64
	for i, profile := range categoryProfiles {
		if i == len(categoryProfiles)-1 {
			amounts[i] = total - assigned
			break
		}
		amounts[i] = int64(profile.share * float64(total))
		assigned += amounts[i]
	}

	return amounts
}

// spreadOverDays distribui um total em centavos ao longo dos dias do mês
// com variação pseudoaleatória, garantindo soma exata e valores nunca
// negativos.
func spreadOverDays(rng *rand.Rand, total int64, days int) []int64 {
	amounts := make([]int64, days)

	remaining := total
	for day := 0; day < days; day++ {
		if day == days-1 {
			amounts[day] = remaining
			break
		}

		base := remaining / int64(days-day)
		jitter := base / 4

		amount := base
		if jitter > 0 {
			amount = base - jitter + rng.Int63n(2*jitter+1)
		}
		if amount > remaining {
			amount = remaining
		}

		amounts[day] = amount
		remaining -= amount
	}

	return amounts
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
