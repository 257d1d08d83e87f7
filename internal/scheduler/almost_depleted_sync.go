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
	"github.com/vfg2006/campaign-stop-service/internal/usecases/stopping"
)

// AlmostDepletedSyncConfig representa a configuração do agendador do marcador
// de quase-esgotamento
type AlmostDepletedSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// AlmostDepletedSyncService agenda e executa o marcador de quase-esgotamento
// sobre todas as campanhas habilitadas
type AlmostDepletedSyncService struct {
	scheduler           *gocron.Scheduler
	config              AlmostDepletedSyncConfig
	campaignRepo        repository.CampaignRepository
	marker              stopping.AlmostDepletedMarker
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAlmostDepletedSyncService cria uma nova instância do serviço do marcador
// de quase-esgotamento
func NewAlmostDepletedSyncService(
	campaignRepo repository.CampaignRepository,
	marker stopping.AlmostDepletedMarker,
	appConfig *config.Config,
) *AlmostDepletedSyncService {
	syncConfig := AlmostDepletedSyncConfig{
		CronSchedule: appConfig.AlmostDepletedSync.CronSchedule,
		SyncEnabled:  appConfig.AlmostDepletedSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do marcador de quase-esgotamento carregada")

	return &AlmostDepletedSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		campaignRepo: campaignRepo,
		marker:       marker,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *AlmostDepletedSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Marcador de quase-esgotamento desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do marcador de quase-esgotamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAlmostDepletedCheck()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar marcador de quase-esgotamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do marcador de quase-esgotamento")
		s.scheduler.Stop()
	}()

	return nil
}

// runAlmostDepletedCheck avalia o quase-esgotamento de todas as campanhas
// habilitadas
func (s *AlmostDepletedSyncService) runAlmostDepletedCheck() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Marcador de quase-esgotamento já em andamento, ignorando")
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

	logrus.Info("Iniciando marcador de quase-esgotamento")

	ctx := context.Background()

	campaigns, err := s.campaignRepo.ListRealTimeStopEnabled(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar campanhas para o marcador de quase-esgotamento")
		return
	}

	if len(campaigns) == 0 {
		logrus.Info("Nenhuma campanha habilitada encontrada para o marcador de quase-esgotamento")
		return
	}

	if err := s.marker.MarkCampaigns(ctx, campaigns); err != nil {
		logrus.WithError(err).Error("Erro ao executar marcador de quase-esgotamento")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"campaigns": len(campaigns),
	}).Info("Marcador de quase-esgotamento concluído")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma execução do marcador
func (s *AlmostDepletedSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Marcador de quase-esgotamento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando execução manual do marcador de quase-esgotamento")
	go s.runAlmostDepletedCheck()
}

// GetStatus retorna o status atual do agendador
func (s *AlmostDepletedSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
