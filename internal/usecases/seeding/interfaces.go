package seeding

import (
	"github.com/adityashm/data-analysis-dashboard/internal/domain"
)

// SampleGenerator define a interface para obter o conjunto de registros de
// demonstração de um ano completo
type SampleGenerator interface {
	// GenerateYear produz os registros diários do ano informado
	GenerateYear(year int) []*domain.DailyRecord
}
