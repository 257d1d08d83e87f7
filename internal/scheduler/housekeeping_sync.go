package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/infrastructure/repository"
	"github.com/vfg2006/campaign-stop-service/internal/config"
)

// HousekeepingSyncConfig representa a configuração do agendador de limpeza
type HousekeepingSyncConfig struct {
	CronSchedule        string
	AuditRetentionDays  int
	SampleRetentionDays int
	SyncEnabled         bool
}

// HousekeepingSyncService aplica as políticas de retenção da trilha de
// auditoria e das séries temporais de gasto
type HousekeepingSyncService struct {
	scheduler           *gocron.Scheduler
	config              HousekeepingSyncConfig
	auditRepo           repository.AuditLogRepository
	spendRepo           repository.RealtimeSpendRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewHousekeepingSyncService cria uma nova instância do serviço de limpeza
func NewHousekeepingSyncService(
	auditRepo repository.AuditLogRepository,
	spendRepo repository.RealtimeSpendRepository,
	appConfig *config.Config,
) *HousekeepingSyncService {
	syncConfig := HousekeepingSyncConfig{
		CronSchedule:        appConfig.HousekeepingSync.CronSchedule,
		AuditRetentionDays:  appConfig.CampaignStop.AuditRetentionDays,
		SampleRetentionDays: appConfig.CampaignStop.SampleRetentionDays,
		SyncEnabled:         appConfig.HousekeepingSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"audit_retention_days":  syncConfig.AuditRetentionDays,
		"sample_retention_days": syncConfig.SampleRetentionDays,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de limpeza carregada")

	return &HousekeepingSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		auditRepo:   auditRepo,
		spendRepo:   spendRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *HousekeepingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Limpeza de retenção desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de retenção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runHousekeeping()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de retenção: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de retenção")
		s.scheduler.Stop()
	}()

	return nil
}

// runHousekeeping remove entradas de auditoria, amostras e agregados além das
// janelas de retenção
func (s *HousekeepingSyncService) runHousekeeping() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de retenção já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando limpeza de retenção")

	ctx := context.Background()

	auditRemoved, err := s.auditRepo.DeleteOlderThan(ctx, s.config.AuditRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao limpar trilha de auditoria")
	}

	samplesRemoved, err := s.spendRepo.DeleteSamplesOlderThan(ctx, s.config.SampleRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao limpar amostras de gasto")
	}

	aggregatesRemoved, err := s.spendRepo.DeleteAggregatesOlderThan(ctx, s.config.SampleRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao limpar agregados de gasto")
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":           duration.String(),
		"audit_removed":      auditRemoved,
		"samples_removed":    samplesRemoved,
		"aggregates_removed": aggregatesRemoved,
	}).Info("Limpeza de retenção concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma limpeza de retenção
func (s *HousekeepingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de retenção já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de retenção")
	go s.runHousekeeping()
}

// GetStatus retorna o status atual do agendador
func (s *HousekeepingSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"audit_retention_days":   s.config.AuditRetentionDays,
		"sample_retention_days":  s.config.SampleRetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
