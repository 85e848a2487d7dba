package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/gravora/metrics-api/infrastructure/repository"
	"github.com/gravora/metrics-api/internal/config"
)

// MetricsCleanupConfig representa a configuração do job de retenção das
// métricas diárias
type MetricsCleanupConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// MetricsCleanupService agenda e executa a remoção de métricas diárias mais
// antigas que a janela de retenção. Snapshots e linhas cruas não são tocados:
// eles já são substituídos por inteiro a cada submissão.
type MetricsCleanupService struct {
	scheduler          *gocron.Scheduler
	config             MetricsCleanupConfig
	dailyMetricsRepo   repository.DailyMetricsRepository
	cleanupRunning     bool
	cleanupMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunDeleted     int64
}

// NewMetricsCleanupService cria o serviço de retenção de métricas diárias
func NewMetricsCleanupService(
	dailyMetricsRepo repository.DailyMetricsRepository,
	appConfig *config.Config,
) *MetricsCleanupService {
	cleanupConfig := MetricsCleanupConfig{
		CronSchedule:  appConfig.MetricsCleanup.CronSchedule,
		RetentionDays: appConfig.MetricsCleanup.RetentionDays,
		Enabled:       appConfig.MetricsCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cleanupConfig.CronSchedule,
		"retention_days": cleanupConfig.RetentionDays,
		"enabled":        cleanupConfig.Enabled,
	}).Info("Configuração do job de retenção de métricas diárias carregada")

	return &MetricsCleanupService{
		scheduler:        scheduler,
		config:           cleanupConfig,
		dailyMetricsRepo: dailyMetricsRepo,
		cleanupRunning:   false,
	}
}

// Start inicia o agendador
func (s *MetricsCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção de métricas diárias desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de métricas diárias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCleanup()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de métricas diárias: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de métricas diárias")
		s.scheduler.Stop()
	}()

	return nil
}

// runCleanup executa uma passada de retenção, protegida contra execuções
// simultâneas
func (s *MetricsCleanupService) runCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Retenção de métricas diárias já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	logrus.WithField("retention_days", s.config.RetentionDays).Info("Iniciando retenção de métricas diárias")

	deleted, err := s.dailyMetricsRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao remover métricas diárias antigas")
		return
	}

	s.lastRunDeleted = deleted
	s.lastRunCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"deleted":  deleted,
		"duration": time.Since(startTime).String(),
	}).Info("Retenção de métricas diárias concluída")
}

// TriggerManualCleanup inicia manualmente uma passada de retenção
func (s *MetricsCleanupService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Retenção de métricas diárias já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando retenção manual de métricas diárias")
	go s.runCleanup()
}

// GetStatus retorna o status atual do agendador
func (s *MetricsCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled":       s.config.Enabled,
		"cleanup_cron":          s.config.CronSchedule,
		"retention_days":        s.config.RetentionDays,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_run_deleted":      s.lastRunDeleted,
	}
}
