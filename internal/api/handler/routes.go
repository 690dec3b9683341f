package handler

import (
	"net/http"

	"github.com/vfg2006/sales-target-api/internal/api/handler/router"
	"github.com/vfg2006/sales-target-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-target-api/internal/usecases/targeting"
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

func Targets(service targeting.TargetService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/targets",
			Method:  http.MethodPost,
			Handler: SetTarget(service),
		},
		{
			Path:    "/v1/targets",
			Method:  http.MethodGet,
			Handler: ListTargets(service),
		},
		{
			Path:    "/v1/targets/current",
			Method:  http.MethodGet,
			Handler: GetCurrentTarget(service),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/performance",
			Method:  http.MethodGet,
			Handler: GetPerformance(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
