package maintenance

import (
	"context"

	"haatbazar_admin/internal/logger"
	"haatbazar_admin/internal/repositories"
)

// BackfillService - разовые обслуживающие проходы по данным.
// Исторически эти операции жили отдельными node-скриптами рядом
// с приложением; здесь они собраны в один сервис с отдельным бинарем.
type BackfillService struct {
	jobRepo repositories.JobRepository
}

func NewBackfillService(jobRepo repositories.JobRepository) *BackfillService {
	return &BackfillService{jobRepo: jobRepo}
}

// BackfillApprovalFlags проставляет isApproved=false всем вакансиям и
// офферам, у которых поле отсутствует. Записи с уже существующим полем
// не трогаются, так что проход идемпотентен и его можно гонять повторно.
func (s *BackfillService) BackfillApprovalFlags(ctx context.Context) (*repositories.BackfillResult, error) {
	result, err := s.jobRepo.SetMissingApprovalFlags(ctx)
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "approval flag backfill completed",
		"jobs", result.Jobs,
		"worker_offers", result.WorkerOffers,
		"employer_offers", result.EmployerOffers,
	)
	return result, nil
}
