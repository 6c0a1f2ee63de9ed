package maintenance

import (
	"context"
	"errors"
	"testing"

	"haatbazar_admin/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubJobRepo - заглушка с управляемым результатом бэкфилла
type stubJobRepo struct {
	repositories.JobRepository // остальные методы не нужны

	result *repositories.BackfillResult
	err    error
	calls  int
}

func (s *stubJobRepo) SetMissingApprovalFlags(_ context.Context) (*repositories.BackfillResult, error) {
	s.calls++
	return s.result, s.err
}

// TestBackfillApprovalFlags - счетчики прокидываются наружу как есть
func TestBackfillApprovalFlags(t *testing.T) {
	t.Parallel()

	repo := &stubJobRepo{result: &repositories.BackfillResult{
		Jobs:           3,
		WorkerOffers:   1,
		EmployerOffers: 0,
	}}

	svc := NewBackfillService(repo)

	result, err := svc.BackfillApprovalFlags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Jobs)
	assert.Equal(t, int64(1), result.WorkerOffers)
	assert.Equal(t, int64(0), result.EmployerOffers)
	assert.Equal(t, 1, repo.calls)
}

// TestBackfillApprovalFlags_RepoError - ошибка хранилища пробрасывается
func TestBackfillApprovalFlags_RepoError(t *testing.T) {
	t.Parallel()

	repo := &stubJobRepo{err: errors.New("not primary")}
	svc := NewBackfillService(repo)

	_, err := svc.BackfillApprovalFlags(context.Background())
	assert.Error(t, err)
}
