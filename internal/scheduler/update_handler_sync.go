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
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/rundates"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/stopping"
)

// UpdateHandlerSyncConfig representa a configuração do tratador da fila de
// eventos de atualização
type UpdateHandlerSyncConfig struct {
	CronSchedule       string
	MaxEventsPerRun    int
	BatchSize          int
	RunDeadlineSeconds int
	SyncEnabled        bool
}

// campaignEvents agrupa os tipos de evento pendentes de uma campanha,
// deduplicados por (campanha, tipo)
type campaignEvents struct {
	campaignID string
	kinds      []domain.EventKind
}

// UpdateHandlerSyncService drena a fila de eventos de atualização e despacha
// as rotinas de recálculo por campanha
type UpdateHandlerSyncService struct {
	scheduler           *gocron.Scheduler
	config              UpdateHandlerSyncConfig
	queueRepo           repository.UpdateQueueRepository
	campaignRepo        repository.CampaignRepository
	checker             stopping.DepletionChecker
	marker              stopping.AlmostDepletedMarker
	dates               rundates.Calculator
	states              stopping.StateWriter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewUpdateHandlerSyncService cria uma nova instância do tratador da fila de
// eventos de atualização
func NewUpdateHandlerSyncService(
	queueRepo repository.UpdateQueueRepository,
	campaignRepo repository.CampaignRepository,
	checker stopping.DepletionChecker,
	marker stopping.AlmostDepletedMarker,
	dates rundates.Calculator,
	states stopping.StateWriter,
	appConfig *config.Config,
) *UpdateHandlerSyncService {
	syncConfig := UpdateHandlerSyncConfig{
		CronSchedule:       appConfig.UpdateHandlerSync.CronSchedule,
		MaxEventsPerRun:    appConfig.CampaignStop.MaxEventsPerRun,
		BatchSize:          appConfig.CampaignStop.BatchSize,
		RunDeadlineSeconds: appConfig.CampaignStop.RunDeadlineSeconds,
		SyncEnabled:        appConfig.UpdateHandlerSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":        syncConfig.CronSchedule,
		"max_events_per_run":   syncConfig.MaxEventsPerRun,
		"batch_size":           syncConfig.BatchSize,
		"run_deadline_seconds": syncConfig.RunDeadlineSeconds,
		"sync_enabled":         syncConfig.SyncEnabled,
	}).Info("Configuração do tratador da fila de atualização carregada")

	return &UpdateHandlerSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		queueRepo:    queueRepo,
		campaignRepo: campaignRepo,
		checker:      checker,
		marker:       marker,
		dates:        dates,
		states:       states,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *UpdateHandlerSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Tratador da fila de atualização desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do tratador da fila de atualização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.processPendingEvents()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar tratador da fila de atualização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do tratador da fila de atualização")
		s.scheduler.Stop()
	}()

	return nil
}

// processPendingEvents drena até MaxEventsPerRun eventos, deduplica por
// (campanha, tipo) e processa as campanhas em lotes de BatchSize. Estourado o
// prazo da execução, os pares (campanha, tipo) ainda não processados voltam
// individualmente para a fila.
func (s *UpdateHandlerSyncService) processPendingEvents() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Tratador da fila de atualização já em andamento, ignorando")
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

	ctx := context.Background()

	events, err := s.queueRepo.DequeueBatch(ctx, s.config.MaxEventsPerRun)
	if err != nil {
		logrus.WithError(err).Error("Erro ao drenar a fila de eventos de atualização")
		return
	}

	if len(events) == 0 {
		return
	}

	logrus.WithField("events", len(events)).Info("Iniciando processamento de eventos de atualização")

	grouped := groupEvents(events)
	deadline := time.Duration(s.config.RunDeadlineSeconds) * time.Second

	processed := 0
	for offset := 0; offset < len(grouped); offset += s.config.BatchSize {
		end := offset + s.config.BatchSize
		if end > len(grouped) {
			end = len(grouped)
		}

		for _, group := range grouped[offset:end] {
			if err := s.processCampaignEvents(ctx, group); err != nil {
				// A falha de uma campanha não pode represar as demais
				logrus.WithError(err).WithField("campaign_id", group.campaignID).
					Error("Erro ao processar eventos de atualização da campanha")
			}
			processed++
		}

		if time.Since(startTime) > deadline && end < len(grouped) {
			s.requeueRemaining(ctx, grouped[end:])
			logrus.WithFields(logrus.Fields{
				"processed": processed,
				"requeued":  len(grouped) - end,
				"deadline":  deadline.String(),
			}).Warn("Prazo da execução estourado, eventos restantes devolvidos à fila")
			return
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"events":    len(events),
		"campaigns": len(grouped),
	}).Info("Processamento de eventos de atualização concluído")

	s.lastSyncCompletedAt = time.Now()
}

// groupEvents deduplica os eventos por (campanha, tipo) preservando a ordem
// de chegada das campanhas
func groupEvents(events []*domain.UpdateEvent) []*campaignEvents {
	index := make(map[string]*campaignEvents)
	grouped := make([]*campaignEvents, 0)

	for _, event := range events {
		if !event.Kind.Valid() {
			logrus.WithFields(logrus.Fields{
				"campaign_id": event.CampaignID,
				"kind":        string(event.Kind),
			}).Warn("Evento de atualização com tipo desconhecido descartado")
			continue
		}

		group, ok := index[event.CampaignID]
		if !ok {
			group = &campaignEvents{campaignID: event.CampaignID}
			index[event.CampaignID] = group
			grouped = append(grouped, group)
		}

		if !group.has(event.Kind) {
			group.kinds = append(group.kinds, event.Kind)
		}
	}

	return grouped
}

func (g *campaignEvents) has(kind domain.EventKind) bool {
	for _, k := range g.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// processCampaignEvents resolve a união das rotinas exigidas pelos tipos de
// evento da campanha e as executa em ordem fixa: datas-limite, laço de
// esgotamento e marcador de quase-esgotamento
func (s *UpdateHandlerSyncService) processCampaignEvents(ctx context.Context, group *campaignEvents) error {
	campaign, err := s.campaignRepo.GetByID(ctx, group.campaignID)
	if err != nil {
		return err
	}

	// Campanha desconhecida: o evento é descartado sem reenfileirar
	if campaign == nil {
		logrus.WithField("campaign_id", group.campaignID).
			Warn("Eventos de atualização para campanha desconhecida descartados")
		return nil
	}

	var runEndDate, runStartDate, runDepletion, runMarker, clearPending bool
	for _, kind := range group.kinds {
		switch kind {
		case domain.EventKindBudget:
			runEndDate = true
			runStartDate = true
			runDepletion = true
			runMarker = true
			clearPending = true
		case domain.EventKindInitialization:
			runEndDate = true
			runStartDate = true
			runDepletion = true
			runMarker = true
		case domain.EventKindDailyCap:
			runMarker = true
		case domain.EventKindCampaignStopState:
			runStartDate = true
		}
	}

	if runEndDate {
		if err := s.dates.RefreshMaxAllowedEndDate(ctx, campaign); err != nil {
			return err
		}
	}

	if runStartDate {
		if err := s.dates.RefreshMinAllowedStartDate(ctx, campaign); err != nil {
			return err
		}
	}

	if runDepletion {
		if err := s.checker.EvaluateCampaign(ctx, campaign); err != nil {
			return err
		}
	}

	if runMarker && campaign.RealTimeStopEnabled {
		if err := s.marker.MarkCampaign(ctx, campaign); err != nil {
			return err
		}
	}

	if clearPending {
		if err := s.states.ClearPendingBudgetUpdates(ctx, campaign.ID); err != nil {
			return err
		}
	}

	return nil
}

// requeueRemaining devolve à fila, um a um, os pares (campanha, tipo) que não
// foram processados dentro do prazo
func (s *UpdateHandlerSyncService) requeueRemaining(ctx context.Context, remaining []*campaignEvents) {
	for _, group := range remaining {
		for _, kind := range group.kinds {
			if err := s.queueRepo.Enqueue(ctx, group.campaignID, kind); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"campaign_id": group.campaignID,
					"kind":        string(kind),
				}).Error("Erro ao devolver evento de atualização à fila")
			}
		}
	}
}

// TriggerManualSync inicia manualmente uma drenagem da fila
func (s *UpdateHandlerSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Tratador da fila de atualização já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando drenagem manual da fila de atualização")
	go s.processPendingEvents()
}

// GetStatus retorna o status atual do agendador
func (s *UpdateHandlerSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"max_events_per_run":     s.config.MaxEventsPerRun,
		"batch_size":             s.config.BatchSize,
		"run_deadline_seconds":   s.config.RunDeadlineSeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if pending, err := s.queueRepo.PendingCount(context.Background()); err == nil {
		status["pending_events"] = pending
	}

	return status
}
