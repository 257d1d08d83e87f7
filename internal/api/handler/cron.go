package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"github.com/vfg2006/campaign-stop-service/internal/scheduler"
	"github.com/vfg2006/campaign-stop-service/pkg/apiErrors"
	"github.com/vfg2006/campaign-stop-service/pkg/middleware"
	"github.com/vfg2006/campaign-stop-service/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDepletionCheck = "depletion-check"
	CronJobTypeAlmostDepleted = "almost-depleted"
	CronJobTypeUpdateHandler  = "update-handler"
	CronJobTypeHousekeeping   = "housekeeping"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DepletionCheckSyncService *scheduler.DepletionCheckSyncService
	AlmostDepletedSyncService *scheduler.AlmostDepletedSyncService
	UpdateHandlerSyncService  *scheduler.UpdateHandlerSyncService
	HousekeepingSyncService   *scheduler.HousekeepingSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		clientClaims, ok := r.Context().Value(middleware.ContextKeyClient).(*domain.Claims)
		if !ok || clientClaims.ClientRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeDepletionCheck:
			if services.DepletionCheckSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do laço de esgotamento não disponível", nil)
				return
			}
			services.DepletionCheckSyncService.TriggerManualSync()

		case CronJobTypeAlmostDepleted:
			if services.AlmostDepletedSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do marcador de quase-esgotamento não disponível", nil)
				return
			}
			services.AlmostDepletedSyncService.TriggerManualSync()

		case CronJobTypeUpdateHandler:
			if services.UpdateHandlerSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço do tratador da fila de atualização não disponível", nil)
				return
			}
			services.UpdateHandlerSyncService.TriggerManualSync()

		case CronJobTypeHousekeeping:
			if services.HousekeepingSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de retenção não disponível", nil)
				return
			}
			services.HousekeepingSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.DepletionCheckSyncService != nil {
				services.DepletionCheckSyncService.TriggerManualSync()
			}
			if services.AlmostDepletedSyncService != nil {
				services.AlmostDepletedSyncService.TriggerManualSync()
			}
			if services.UpdateHandlerSyncService != nil {
				services.UpdateHandlerSyncService.TriggerManualSync()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: depletion-check, almost-depleted, update-handler, housekeeping, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		clientClaims, ok := r.Context().Value(middleware.ContextKeyClient).(*domain.Claims)
		if !ok || clientClaims.ClientRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"depletion-check": services.DepletionCheckSyncService.GetStatus(),
			"almost-depleted": services.AlmostDepletedSyncService.GetStatus(),
			"update-handler":  services.UpdateHandlerSyncService.GetStatus(),
			"housekeeping":    services.HousekeepingSyncService.GetStatus(),
		}

		logrus.Debug(utils.PrettyJson(status))

		json.NewEncoder(w).Encode(status)
	}
}
