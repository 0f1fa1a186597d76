package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/mail-insights-api/internal/api/handler/router"
	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/internal/usecases/account"
	accountmocks "github.com/vfg2006/mail-insights-api/internal/usecases/account/mocks"
	"github.com/vfg2006/mail-insights-api/internal/usecases/reporting"
	reportmocks "github.com/vfg2006/mail-insights-api/internal/usecases/reporting/mocks"
	syncmocks "github.com/vfg2006/mail-insights-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/mail-insights-api/pkg/apiErrors"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type fakeCron struct {
	accept    bool
	triggered int
}

func (c *fakeCron) TriggerManualSync() bool {
	c.triggered++
	return c.accept
}

func (c *fakeCron) GetStatus() map[string]any {
	return map[string]any{"sync_running": !c.accept}
}

type fixture struct {
	accounts *accountmocks.MockAccountService
	syncer   *syncmocks.MockSyncer
	reporter *reportmocks.MockReporter
	cron     *fakeCron
	handler  http.Handler
}

func newFixture(t *testing.T, db Pinger) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		accounts: accountmocks.NewMockAccountService(ctrl),
		syncer:   syncmocks.NewMockSyncer(ctrl),
		reporter: reportmocks.NewMockReporter(ctrl),
		cron:     &fakeCron{accept: true},
	}
	f.handler = router.New(
		router.WithRoutes(Healthcheck(db)...),
		router.WithRoutes(Accounts(f.accounts)...),
		router.WithRoutes(Sync(f.syncer, f.reporter)...),
		router.WithRoutes(Reports(f.reporter)...),
		router.WithRoutes(CronJobs(CronJobServices{AutoSyncService: f.cron})...),
	)
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name   string
		db     Pinger
		status int
	}{
		{"banco disponível", fakePinger{}, http.StatusOK},
		{"banco indisponível", fakePinger{err: errors.New("conexão recusada")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.db)
			rec := f.do(http.MethodGet, "/healthcheck", "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRouter_NotFound(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(http.MethodGet, "/v1/inexistente", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decodeError(t, rec).Code)
}

func TestCreateAccount(t *testing.T) {
	t.Run("corpo inválido", func(t *testing.T) {
		f := newFixture(t, nil)
		rec := f.do(http.MethodPost, "/v1/accounts", "{")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("url duplicada", func(t *testing.T) {
		f := newFixture(t, nil)
		f.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
			Return(nil, account.NewAccountErrorWithID(account.ErrAccountAlreadyExists, apiErrors.ErrAccountAlreadyExists, "acc1", "https://x.api-us1.com"))

		rec := f.do(http.MethodPost, "/v1/accounts", `{"name":"Loja","baseUrl":"https://x.api-us1.com","apiKey":"0123456789"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrAccountAlreadyExists, decodeError(t, rec).Code)
	})

	t.Run("criada", func(t *testing.T) {
		f := newFixture(t, nil)
		f.accounts.EXPECT().CreateAccount(gomock.Any(), &domain.CreateAccountRequest{
			Name: "Loja", BaseURL: "https://x.api-us1.com", APIKey: "0123456789",
		}).Return(&domain.AccountResponse{ID: "acc1", Name: "Loja", HasAPIKey: true}, nil)

		rec := f.do(http.MethodPost, "/v1/accounts", `{"name":"Loja","baseUrl":"https://x.api-us1.com","apiKey":"0123456789"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "0123456789")
	})
}

func TestUpdateAccount_UsesPathID(t *testing.T) {
	f := newFixture(t, nil)
	f.accounts.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.UpdateAccountRequest) (*domain.AccountResponse, error) {
			assert.Equal(t, "acc9", req.ID)
			require.NotNil(t, req.Name)
			assert.Equal(t, "Nova", *req.Name)
			return &domain.AccountResponse{ID: "acc9", Name: "Nova"}, nil
		})

	rec := f.do(http.MethodPut, "/v1/accounts/acc9", `{"name":"Nova"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeactivateAccount_NotFound(t *testing.T) {
	f := newFixture(t, nil)
	f.accounts.EXPECT().DeactivateAccount(gomock.Any(), "acc1").
		Return(account.NewAccountErrorWithID(account.ErrAccountNotFound, apiErrors.ErrAccountNotFound, "acc1", "Conta não encontrada"))

	rec := f.do(http.MethodDelete, "/v1/accounts/acc1", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrAccountNotFound, decodeError(t, rec).Code)
}

func TestSyncAccount(t *testing.T) {
	tests := []struct {
		name   string
		result *domain.SyncResult
		status int
	}{
		{"sucesso", &domain.SyncResult{Success: true, ListsSynced: 2}, http.StatusOK},
		{"falha", &domain.SyncResult{Success: false, Error: "account inactive"}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.syncer.EXPECT().SyncAccount(gomock.Any(), "acc1", false).Return(tt.result)

			rec := f.do(http.MethodPost, "/v1/accounts/acc1/sync", "")

			assert.Equal(t, tt.status, rec.Code)
			var body domain.SyncResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.result.Success, body.Success)
		})
	}
}

func TestSyncAll(t *testing.T) {
	t.Run("sem corpo sincroniza todas as ativas", func(t *testing.T) {
		f := newFixture(t, nil)
		f.syncer.EXPECT().SyncAllActive(gomock.Any(), false).Return(&domain.SyncAllResult{Success: true, TotalAccounts: 3}, nil)

		rec := f.do(http.MethodPost, "/v1/sync/all", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("com contas informadas", func(t *testing.T) {
		f := newFixture(t, nil)
		f.syncer.EXPECT().SyncAccounts(gomock.Any(), []string{"acc1", "acc2"}, false).Return([]*domain.AccountSyncResult{
			{AccountID: "acc1", SyncResult: domain.SyncResult{Success: true, ListsSynced: 2}},
			{AccountID: "acc2", SyncResult: domain.SyncResult{Success: false, Error: "falha"}},
		})

		rec := f.do(http.MethodPost, "/v1/sync/all", `{"accountIds":["acc1","acc2"]}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body domain.SyncAllResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, 1, body.SuccessCount)
		assert.Equal(t, 1, body.ErrorCount)
		assert.Equal(t, 2, body.Totals.Lists)
	})
}

func TestCampaignReport_ParsesFilters(t *testing.T) {
	f := newFixture(t, nil)
	f.reporter.EXPECT().CampaignReport(gomock.Any(), domain.MetricsFilter{
		AccountIDs: []string{"acc1", "acc2"},
		ListKeys:   []domain.ListKey{{AccountID: "acc1", ListID: "3"}},
		Statuses:   []string{"completed"},
		Window: &domain.DateWindow{
			From: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}).Return(&domain.CampaignReport{Mode: domain.ReportModeWindowed}, nil)

	rec := f.do(http.MethodGet, "/v1/reports/campaigns?accountIds=acc1,acc2&listIds=acc1:3&status=completed&from=2025-06-01&to=2025-06-01", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReports_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"from sem to", "/v1/reports/campaigns?from=2025-06-01"},
		{"data mal formatada", "/v1/reports/metrics?from=01/06/2025&to=2025-06-02"},
		{"janela invertida", "/v1/reports/lists?from=2025-06-10&to=2025-06-01"},
		{"lista sem conta", "/v1/reports/accounts?listIds=3"},
		{"limite negativo", "/v1/reports/top-campaigns?limit=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			rec := f.do(http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
		})
	}
}

func TestTopCampaigns_InvalidMetric(t *testing.T) {
	f := newFixture(t, nil)
	f.reporter.EXPECT().TopCampaigns(gomock.Any(), "bogus", 5, domain.MetricsFilter{}).
		Return(nil, reporting.NewReportError(reporting.ErrInvalidMetric, apiErrors.ErrInvalidRequest, "bogus"))

	rec := f.do(http.MethodGet, "/v1/reports/top-campaigns?metric=bogus&limit=5", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
}

func TestRunCronJob(t *testing.T) {
	t.Run("tipo desconhecido", func(t *testing.T) {
		f := newFixture(t, nil)
		rec := f.do(http.MethodPost, "/v1/cron/meta/run", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrSyncUnknownType, decodeError(t, rec).Code)
		assert.Equal(t, 0, f.cron.triggered)
	})

	t.Run("já em andamento", func(t *testing.T) {
		f := newFixture(t, nil)
		f.cron.accept = false
		rec := f.do(http.MethodPost, "/v1/cron/auto-sync/run", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrSyncAlreadyActive, decodeError(t, rec).Code)
	})

	t.Run("aceita", func(t *testing.T) {
		f := newFixture(t, nil)
		rec := f.do(http.MethodPost, "/v1/cron/all/run", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, f.cron.triggered)
	})

	t.Run("status", func(t *testing.T) {
		f := newFixture(t, nil)
		rec := f.do(http.MethodGet, "/v1/cron", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), CronJobTypeAutoSync)
	})
}
