package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/internal/config"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/stopping"
)

// DepletionCheckSyncConfig representa a configuração do agendador do laço de
// controle de esgotamento
type DepletionCheckSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DepletionCheckSyncService agenda e executa o laço de controle de
// esgotamento sobre todas as campanhas habilitadas
type DepletionCheckSyncService struct {
	scheduler           *gocron.Scheduler
	config              DepletionCheckSyncConfig
	checker             stopping.DepletionChecker
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDepletionCheckSyncService cria uma nova instância do serviço do laço de
// controle de esgotamento
func NewDepletionCheckSyncService(
	checker stopping.DepletionChecker,
	appConfig *config.Config,
) *DepletionCheckSyncService {
	syncConfig := DepletionCheckSyncConfig{
		CronSchedule: appConfig.DepletionCheckSync.CronSchedule,
		SyncEnabled:  appConfig.DepletionCheckSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do laço de esgotamento carregada")

	return &DepletionCheckSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		checker:     checker,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DepletionCheckSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Laço de controle de esgotamento desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do laço de esgotamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDepletionCheck()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar laço de esgotamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do laço de esgotamento")
		s.scheduler.Stop()
	}()

	return nil
}

// runDepletionCheck avalia todas as campanhas habilitadas
func (s *DepletionCheckSyncService) runDepletionCheck() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Laço de esgotamento já em andamento, ignorando")
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

	logrus.Info("Iniciando laço de controle de esgotamento")

	if err := s.checker.CheckCampaigns(context.Background()); err != nil {
		logrus.WithError(err).Error("Erro ao executar laço de controle de esgotamento")
		return
	}

	duration := time.Since(startTime)
	logrus.WithField("duration", duration.String()).Info("Laço de controle de esgotamento concluído")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma execução do laço de esgotamento
func (s *DepletionCheckSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Laço de esgotamento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do laço de esgotamento")
	go s.runDepletionCheck()
}

// GetStatus retorna o status atual do agendador
func (s *DepletionCheckSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
