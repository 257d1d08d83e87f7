package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-stop-service/infrastructure/repository"
	"github.com/vfg2006/campaign-stop-service/internal/api/handler/router"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/stopping"
	"github.com/vfg2006/campaign-stop-service/internal/usecases/validating"
	"github.com/vfg2006/campaign-stop-service/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/token",
			Method:  http.MethodPost,
			Handler: IssueToken(service),
		},
	}
}

func CampaignStop(
	reader stopping.StateReader,
	validator validating.BudgetValidator,
	queueRepo repository.UpdateQueueRepository,
	states stopping.StateWriter,
	auditRepo repository.AuditLogRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaignstop/states",
			Method:      http.MethodPost,
			Handler:     GetCampaignStopStates(reader),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaignstop/budgets/validate",
			Method:      http.MethodPost,
			Handler:     ValidateBudgetAmount(validator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaignstop/events",
			Method:      http.MethodPost,
			Handler:     EnqueueUpdateEvent(queueRepo, states),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaignstop/campaigns/:id/audit",
			Method:      http.MethodGet,
			Handler:     GetCampaignAuditLog(auditRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
