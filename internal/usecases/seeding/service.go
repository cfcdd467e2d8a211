package seeding

import (
	"context"
	"fmt"

	"github.com/adityashm/data-analysis-dashboard/infrastructure/repository"
	"github.com/adityashm/data-analysis-dashboard/internal/config"
	"github.com/adityashm/data-analysis-dashboard/pkg/log"
	"github.com/adityashm/data-analysis-dashboard/pkg/utils"
)

// Seeder garante a carga inicial de dados do dashboard
type Seeder interface {
	// EnsurePopulated popula o banco quando vazio e retorna se a carga aconteceu
	EnsurePopulated(ctx context.Context) (bool, error)
}

type Service struct {
	cfg              config.Seed
	generator        SampleGenerator
	recordRepository repository.RecordRepository
}

// NewService cria uma nova instância do serviço de carga inicial
func NewService(
	cfg config.Seed,
	generator SampleGenerator,
	recordRepo repository.RecordRepository,
) Seeder {
	return &Service{
		cfg:              cfg,
		generator:        generator,
		recordRepository: recordRepo,
	}
}

// EnsurePopulated verifica se o armazenamento já tem registros e, caso
// contrário, insere o conjunto de demonstração de um ano inteiro em uma
// única transação. A operação é idempotente: chamadas repetidas não
// duplicam dados.
func (s *Service) EnsurePopulated(ctx context.Context) (bool, error) {
	logger := log.ForContext(ctx)

	total, err := s.recordRepository.CountRecords(ctx)
	if err != nil {
		return false, err
	}

	if total > 0 {
		logger.WithField("records", total).Info("seeding: banco já populado, carga ignorada")
		return false, nil
	}

	records := s.generator.GenerateYear(s.cfg.Year)
	if len(records) > 0 {
		logger.Debugf("seeding: exemplo de registro gerado %s", utils.PrettyJson(records[0]))
	}

	inserted, err := s.recordRepository.BulkInsert(ctx, records)
	if err != nil {
		return false, err
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return false, fmt.Errorf("erro ao gerar o identificador da carga: %w", err)
	}

	if err := s.recordRepository.RecordSeedRun(ctx, runID, s.cfg.Year, inserted); err != nil {
		return false, err
	}

	logger.WithFields(log.Fields{
		"run_id":   runID,
		"year":     s.cfg.Year,
		"inserted": inserted,
	}).Info("seeding: carga inicial concluída")

	return true, nil
}
