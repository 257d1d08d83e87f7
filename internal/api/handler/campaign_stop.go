package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-stop-service/infrastructure/repository"
	"github.com/vfg2006/campaign-stop-service/internal/domain"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/stopping"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/validating"
	"github.com/vfg2006/campaign-stop-service/pkg/apiErrors"
	"github.com/vfg2006/campaign-stop-service/pkg/utils"
)

const defaultAuditLimit = 50

type CampaignStopStatesRequest struct {
	CampaignIDs []string `json:"campaign_ids"`
}

type ValidateBudgetAmountRequest struct {
	CampaignID     string  `json:"campaign_id"`
	LineItemID     string  `json:"line_item_id"`
	ProposedAmount float64 `json:"proposed_amount"`
}

type EnqueueUpdateEventRequest struct {
	CampaignID string `json:"campaign_id"`
	Kind       string `json:"kind"`
}

// GetCampaignStopStates retorna a visão pública dos registros de controle das
// campanhas solicitadas
func GetCampaignStopStates(service stopping.StateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCampaignStopStates")

		var req CampaignStopStatesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if len(req.CampaignIDs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Lista de campanhas não informada", nil)
			return
		}

		states, err := service.GetCampaignStopStates(r.Context(), req.CampaignIDs)
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar registros de controle")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar registros de controle", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": states,
		})
	}
}

// ValidateBudgetAmount valida de forma síncrona uma mudança de valor de item
// de orçamento, vetando reduções abaixo do gasto já estimado
func ValidateBudgetAmount(service validating.BudgetValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ValidateBudgetAmount")

		var req ValidateBudgetAmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.CampaignID == "" || req.LineItemID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campanha e item de orçamento são obrigatórios", nil)
			return
		}

		err := service.ValidateBudgetAmount(r.Context(), req.CampaignID, req.LineItemID, req.ProposedAmount)
		if err != nil {
			var minBudgetErr *validating.MinBudgetError
			if errors.As(err, &minBudgetErr) {
				apiErrors.WriteError(w, apiErrors.ErrBudgetBelowMinimum, minBudgetErr.Error(), map[string]any{
					"line_item_id": minBudgetErr.LineItemID,
					"min_amount":   minBudgetErr.MinAmount,
				})
				return
			}

			if errors.Is(err, validating.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
				return
			}

			logrus.WithError(err).Error("Erro ao validar valor de orçamento")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao validar valor de orçamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"accepted": true,
		})
	}
}

// EnqueueUpdateEvent recebe um evento de atualização dos sistemas externos e
// o enfileira para o tratador assíncrono
func EnqueueUpdateEvent(queueRepo repository.UpdateQueueRepository, states stopping.StateWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - EnqueueUpdateEvent")

		var req EnqueueUpdateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.CampaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campanha não informada", nil)
			return
		}

		kind := domain.EventKind(req.Kind)
		if !kind.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de evento inválido. Valores aceitos: BUDGET, DAILY_CAP, INITIALIZATION, CAMPAIGNSTOP_STATE", nil)
			return
		}

		if err := queueRepo.Enqueue(r.Context(), req.CampaignID, kind); err != nil {
			logrus.WithError(err).Error("Erro ao enfileirar evento de atualização")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao enfileirar evento de atualização", nil)
			return
		}

		// Eventos de orçamento deixam a flag de pendência visível até o
		// tratador processar a campanha
		if kind == domain.EventKindBudget {
			if err := states.MarkPendingBudgetUpdates(r.Context(), req.CampaignID); err != nil {
				logrus.WithError(err).WithField("campaign_id", req.CampaignID).
					Error("Erro ao marcar atualizações de orçamento pendentes")
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Evento enfileirado com sucesso",
			"kind":    string(kind),
		})
	}
}

// GetCampaignAuditLog retorna as entradas mais recentes da trilha de decisão
// da campanha
func GetCampaignAuditLog(auditRepo repository.AuditLogRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCampaignAuditLog")

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campanha não informada", nil)
			return
		}

		limit := defaultAuditLimit
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
				return
			}
			limit = parsed
		}

		since, err := utils.ParseDate(r.URL.Query().Get("since"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Formato esperado: 2006-01-02", nil)
			return
		}

		entries, err := auditRepo.ListByCampaignID(r.Context(), campaignID, limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar trilha de auditoria")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar trilha de auditoria", nil)
			return
		}

		if !since.IsZero() {
			filtered := make([]*domain.AuditEntry, 0, len(entries))
			for _, entry := range entries {
				if !entry.RecordedAt.Before(*since) {
					filtered = append(filtered, entry)
				}
			}
			entries = filtered
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": entries,
		})
	}
}
