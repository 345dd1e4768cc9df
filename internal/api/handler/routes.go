package handler

import (
	"net/http"

	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/api/handler/router"
	"github.com/vfg2006/social-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/social-insights-api/internal/usecases/attributing"
	"github.com/vfg2006/social-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/social-insights-api/internal/usecases/exporting"
	"github.com/vfg2006/social-insights-api/pkg/middleware"
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

func Overview(service aggregating.Overviewer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/overview",
			Method:      http.MethodGet,
			Handler:     GetCustomerOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stats/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/followers/growth",
			Method:      http.MethodGet,
			Handler:     GetFollowerGrowth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Attribution(attributor attributing.Attributor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/attribution/resolve",
			Method:      http.MethodGet,
			Handler:     ResolveAttribution(attributor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/attribution/stats",
			Method:      http.MethodGet,
			Handler:     GetAttributionStats(attributor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Export(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/export/overview.xlsx",
			Method:      http.MethodGet,
			Handler:     ExportOverviewWorkbook(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/export/slides",
			Method:      http.MethodGet,
			Handler:     ExportSlideDeck(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/export/followers/chart",
			Method:      http.MethodGet,
			Handler:     ExportFollowerChart(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Customers(repo repository.CustomerRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomers(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/account-owner",
			Method:      http.MethodGet,
			Handler:     GetAccountOwner(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Posts(repo repository.MetricSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/posts/:id/metrics",
			Method:      http.MethodGet,
			Handler:     GetPostMetricsHistory(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
