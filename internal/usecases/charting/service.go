package charting

import (
	"fmt"

	"github.com/adityashm/data-analysis-dashboard/internal/domain"
)

// Cores e dimensões compartilhadas pelos gráficos do dashboard.
const (
	salesLineColor    = "#3B82F6"
	expensesLineColor = "#EF4444"
	marginFillColor   = "#10B981"
	unitsBarColor     = "#8B5CF6"

	chartTemplate = "plotly_white"
	chartHeight   = 400
)

// ChartBuilder monta os descritores declarativos consumidos pelo Plotly no
// cliente. Cada montagem é pura e determinística: a mesma série produz
// sempre o mesmo descritor.
type ChartBuilder interface {
	SalesVsExpenses(months []string, sales, expenses []float64) (*domain.ChartResponse, error)
	ProfitMargin(months []string, margins []float64) (*domain.ChartResponse, error)
	CategorySales(categories []string, sales []float64) (*domain.ChartResponse, error)
	UnitsSold(months []string, units []int64) (*domain.ChartResponse, error)

	// BuildAll monta os quatro gráficos a partir da série mensal e do
	// consolidado por categoria
	BuildAll(series []*domain.MonthlyPoint, breakdown []*domain.CategoryStat) (*domain.ChartCollection, error)
}

type Service struct{}

// NewService cria uma nova instância do serviço de gráficos
func NewService() ChartBuilder {
	return &Service{}
}

// SalesVsExpenses monta o gráfico de linhas de vendas contra despesas,
// com as duas séries sobre o mesmo eixo de meses e hover unificado.
func (s *Service) SalesVsExpenses(months []string, sales, expenses []float64) (*domain.ChartResponse, error) {
	if len(sales) != len(months) || len(expenses) != len(months) {
		return nil, NewSeriesError(ErrInvalidSeries, "sales_chart",
			fmt.Sprintf("meses: %d, vendas: %d, despesas: %d", len(months), len(sales), len(expenses)))
	}

	return &domain.ChartResponse{
		Data: []*domain.ChartTrace{
			{
				Type:   "scatter",
				X:      months,
				Y:      sales,
				Mode:   "lines+markers",
				Name:   "Sales",
				Line:   &domain.ChartLine{Color: salesLineColor, Width: 3},
				Marker: &domain.ChartMarker{Size: 8},
			},
			{
				Type:   "scatter",
				X:      months,
				Y:      expenses,
				Mode:   "lines+markers",
				Name:   "Expenses",
				Line:   &domain.ChartLine{Color: expensesLineColor, Width: 3},
				Marker: &domain.ChartMarker{Size: 8},
			},
		},
		Layout: &domain.ChartLayout{
			Title:      "Monthly Sales vs Expenses",
			XAxisTitle: "Month",
			YAxisTitle: "Amount ($)",
			HoverMode:  "x unified",
			Template:   chartTemplate,
			Height:     chartHeight,
		},
	}, nil
}

// ProfitMargin monta o gráfico de margem: uma única série preenchida até a
// linha de base.
func (s *Service) ProfitMargin(months []string, margins []float64) (*domain.ChartResponse, error) {
	if len(margins) != len(months) {
		return nil, NewSeriesError(ErrInvalidSeries, "margin_chart",
			fmt.Sprintf("meses: %d, margens: %d", len(months), len(margins)))
	}

	return &domain.ChartResponse{
		Data: []*domain.ChartTrace{
			{
				Type:   "scatter",
				X:      months,
				Y:      margins,
				Mode:   "lines+markers",
				Name:   "Profit Margin (%)",
				Fill:   "tozeroy",
				Line:   &domain.ChartLine{Color: marginFillColor, Width: 3},
				Marker: &domain.ChartMarker{Size: 8},
			},
		},
		Layout: &domain.ChartLayout{
			Title:      "Monthly Profit Margin %",
			XAxisTitle: "Month",
			YAxisTitle: "Profit Margin (%)",
			Template:   chartTemplate,
			Height:     chartHeight,
		},
	}, nil
}

// CategorySales monta o gráfico de barras por categoria. A ordem das
// barras é a ordem recebida; a montagem nunca reordena a série.
func (s *Service) CategorySales(categories []string, sales []float64) (*domain.ChartResponse, error) {
	if len(sales) != len(categories) {
		return nil, NewSeriesError(ErrInvalidSeries, "category_chart",
			fmt.Sprintf("categorias: %d, vendas: %d", len(categories), len(sales)))
	}

	labels := make([]string, len(sales))
	for i, amount := range sales {
		labels[i] = fmt.Sprintf("%.1f", amount)
	}

	return &domain.ChartResponse{
		Data: []*domain.ChartTrace{
			{
				Type: "bar",
				X:    categories,
				Y:    sales,
				Name: "Total Sales",
				Marker: &domain.ChartMarker{
					Color:      sales,
					Colorscale: "Viridis",
					ShowScale:  true,
				},
				Text:         labels,
				TextPosition: "outside",
			},
		},
		Layout: &domain.ChartLayout{
			Title:      "Sales by Category",
			XAxisTitle: "Category",
			YAxisTitle: "Total Sales ($)",
			Template:   chartTemplate,
			Height:     chartHeight,
		},
	}, nil
}

// UnitsSold monta o gráfico de barras de unidades vendidas por mês.
func (s *Service) UnitsSold(months []string, units []int64) (*domain.ChartResponse, error) {
	if len(units) != len(months) {
		return nil, NewSeriesError(ErrInvalidSeries, "units_chart",
			fmt.Sprintf("meses: %d, unidades: %d", len(months), len(units)))
	}

	return &domain.ChartResponse{
		Data: []*domain.ChartTrace{
			{
				Type:   "bar",
				X:      months,
				Y:      units,
				Name:   "Units Sold",
				Marker: &domain.ChartMarker{Color: unitsBarColor},
			},
		},
		Layout: &domain.ChartLayout{
			Title:      "Monthly Units Sold",
			XAxisTitle: "Month",
			YAxisTitle: "Units Sold",
			Template:   chartTemplate,
			Height:     chartHeight,
		},
	}, nil
}

func (s *Service) BuildAll(series []*domain.MonthlyPoint, breakdown []*domain.CategoryStat) (*domain.ChartCollection, error) {
	months := make([]string, len(series))
	sales := make([]float64, len(series))
	expenses := make([]float64, len(series))
	margins := make([]float64, len(series))
	units := make([]int64, len(series))

	for i, point := range series {
		months[i] = point.Month
		sales[i] = domain.Amount(point.TotalSalesCents)
		expenses[i] = domain.Amount(point.TotalExpensesCents)
		margins[i] = point.ProfitMarginPct
		units[i] = point.TotalUnits
	}

	categories := make([]string, len(breakdown))
	categorySales := make([]float64, len(breakdown))
	for i, stat := range breakdown {
		categories[i] = stat.Category
		categorySales[i] = domain.Amount(stat.TotalSalesCents)
	}

	salesChart, err := s.SalesVsExpenses(months, sales, expenses)
	if err != nil {
		return nil, err
	}

	marginChart, err := s.ProfitMargin(months, margins)
	if err != nil {
		return nil, err
	}

	categoryChart, err := s.CategorySales(categories, categorySales)
	if err != nil {
		return nil, err
	}

	unitsChart, err := s.UnitsSold(months, units)
	if err != nil {
		return nil, err
	}

	return &domain.ChartCollection{
		SalesChart:    salesChart,
		MarginChart:   marginChart,
		CategoryChart: categoryChart,
		UnitsChart:    unitsChart,
	}, nil
}
