package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vfg2006/mail-insights-api/internal/api/handler/router"
	"github.com/vfg2006/mail-insights-api/internal/usecases/account"
	"github.com/vfg2006/mail-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/mail-insights-api/internal/usecases/syncing"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Accounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: ListAccounts(service),
		},
		{
			Path:    "/v1/accounts",
			Method:  http.MethodPost,
			Handler: CreateAccount(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodPut,
			Handler: UpdateAccount(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodDelete,
			Handler: DeactivateAccount(service),
		},
		{
			Path:    "/v1/accounts/:id/test-connection",
			Method:  http.MethodPost,
			Handler: TestAccountConnection(service),
		},
	}
}

func Sync(syncer syncing.Syncer, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/sync",
			Method:  http.MethodPost,
			Handler: SyncAccount(syncer),
		},
		{
			Path:    "/v1/sync/all",
			Method:  http.MethodPost,
			Handler: SyncAll(syncer),
		},
		{
			Path:    "/v1/sync/history",
			Method:  http.MethodGet,
			Handler: SyncHistory(reporter),
		},
		{
			Path:    "/v1/sync/last-auto",
			Method:  http.MethodGet,
			Handler: LastAutoSync(reporter),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/campaigns",
			Method:  http.MethodGet,
			Handler: CampaignReport(service),
		},
		{
			Path:    "/v1/reports/metrics",
			Method:  http.MethodGet,
			Handler: AggregatedMetrics(service),
		},
		{
			Path:    "/v1/reports/accounts",
			Method:  http.MethodGet,
			Handler: MetricsByAccount(service),
		},
		{
			Path:    "/v1/reports/top-campaigns",
			Method:  http.MethodGet,
			Handler: TopCampaigns(service),
		},
		{
			Path:    "/v1/reports/automations",
			Method:  http.MethodGet,
			Handler: AutomationReport(service),
		},
		{
			Path:    "/v1/reports/lists",
			Method:  http.MethodGet,
			Handler: ListReport(service),
		},
		{
			Path:    "/v1/reports/top-lists",
			Method:  http.MethodGet,
			Handler: TopLists(service),
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
			Path:    "/v1/cron",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
