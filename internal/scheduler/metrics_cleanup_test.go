package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/gravora/metrics-api/infrastructure/repository/mocks"
	"github.com/gravora/metrics-api/internal/config"
)

func newCleanupService(t *testing.T, enabled bool) (*MetricsCleanupService, *mocks.MockDailyMetricsRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDailyMetricsRepository(ctrl)

	cfg := &config.Config{
		MetricsCleanup: config.MetricsCleanup{
			CronSchedule:  "0 3 * * *",
			RetentionDays: 365,
			Enabled:       enabled,
		},
	}

	return NewMetricsCleanupService(repo, cfg), repo
}

func TestRunCleanupDeletesOldMetrics(t *testing.T) {
	service, repo := newCleanupService(t, true)

	repo.EXPECT().DeleteOlderThan(365).Return(int64(42), nil)

	service.runCleanup()

	status := service.GetStatus()
	assert.Equal(t, int64(42), status["last_run_deleted"])
	assert.False(t, service.cleanupRunning)
}

func TestRunCleanupKeepsStatusOnError(t *testing.T) {
	service, repo := newCleanupService(t, true)

	repo.EXPECT().DeleteOlderThan(365).Return(int64(0), errors.New("timeout"))

	service.runCleanup()

	status := service.GetStatus()
	assert.Equal(t, int64(0), status["last_run_deleted"])
	assert.False(t, service.cleanupRunning)
}

func TestStartDisabledDoesNothing(t *testing.T) {
	service, _ := newCleanupService(t, false)

	// Nenhuma chamada ao repositório deve acontecer
	err := service.Start(context.Background())
	assert.NoError(t, err)
}

func TestGetStatusExposesConfig(t *testing.T) {
	service, _ := newCleanupService(t, true)

	status := service.GetStatus()
	assert.Equal(t, true, status["cleanup_enabled"])
	assert.Equal(t, "0 3 * * *", status["cleanup_cron"])
	assert.Equal(t, 365, status["retention_days"])
}
