package handler

import (
	"net/http"

	"github.com/vfg2006/visibility-audit-api/internal/api/handler/router"
	"github.com/vfg2006/visibility-audit-api/internal/scheduler"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/authenticating"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/projecting"
	"github.com/vfg2006/visibility-audit-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Scores() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/scores/normalize",
			Method:      http.MethodPost,
			Handler:     NormalizeScores(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/money-leaks/aggregate",
			Method:      http.MethodPost,
			Handler:     AggregateMoneyLeaks(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Audits(service auditing.Auditor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/audits/:id/report",
			Method:      http.MethodGet,
			Handler:     GetAuditReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/audits/:id/watch",
			Method:      http.MethodPost,
			Handler:     WatchAudit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/audits/:id/watch",
			Method:      http.MethodGet,
			Handler:     GetAuditWatch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/fix-services",
			Method:      http.MethodGet,
			Handler:     ListFixServices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Projections(service projecting.Projector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projections/costs",
			Method:      http.MethodGet,
			Handler:     GetCostProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/projections/commission",
			Method:      http.MethodGet,
			Handler:     GetCommissionProjection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrPartner()},
		},
		{
			Path:        "/v1/partners",
			Method:      http.MethodGet,
			Handler:     ListPartners(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/partners/:id/commission",
			Method:      http.MethodGet,
			Handler:     GetPartnerCommission(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrPartner()},
		},
	}
}

func CronJobs(syncer scheduler.CatalogSyncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
