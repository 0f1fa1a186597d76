package syncing

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/acclient"
	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
	acmocks "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/mocks"
	mqmocks "github.com/vfg2006/mail-insights-api/infrastructure/messaging/rabbitmq/mocks"
	"github.com/vfg2006/mail-insights-api/internal/config"
	"github.com/vfg2006/mail-insights-api/internal/domain"
)

var syncNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func pagerOf[T any](items []T) *acclient.Pager[T] {
	return acclient.NewPager(func(_ context.Context, limit, offset int) ([]T, int, bool, error) {
		if offset >= len(items) {
			return nil, len(items), true, nil
		}
		end := min(offset+limit, len(items))
		return items[offset:end], len(items), true, nil
	}, 2)
}

func failingPager[T any](err error) *acclient.Pager[T] {
	return acclient.NewPager(func(context.Context, int, int) ([]T, int, bool, error) {
		return nil, 0, false, err
	}, 2)
}

func rawCampaign(id, name string, sent, uniqueOpens, uniqueClicks int) acdomain.Campaign {
	return acdomain.Campaign{
		ID:               id,
		Name:             name,
		Status:           "5",
		SendAmt:          acdomain.FlexString(strconv.Itoa(sent)),
		UniqueOpens:      acdomain.FlexString(strconv.Itoa(uniqueOpens)),
		UniqueLinkClicks: acdomain.FlexString(strconv.Itoa(uniqueClicks)),
		SDate:            "2025-06-01 10:00:00",
	}
}

// upstream descreve o que a API de uma conta devolve
type upstream struct {
	lists               []acdomain.List
	campaigns           []acdomain.Campaign
	campaignLists       map[string][]string
	automations         []acdomain.Automation
	automationCampaigns map[string][]string
	messages            []acdomain.Message

	listsErr     error
	campaignsErr error
}

func sampleUpstream() upstream {
	automationCampaign := rawCampaign("11", "[SK] Email 00", 20, 10, 2)
	automationCampaign.Automation = "1"
	seriesCampaign := rawCampaign("12", "[SK] Email 01", 10, 5, 1)
	seriesCampaign.SeriesID = "7"

	return upstream{
		lists: []acdomain.List{
			{ID: "1", Name: "Clientes", SubscriberCount: "120"},
			{ID: "2", Name: "Leads", SubscriberCount: "30"},
		},
		campaigns: []acdomain.Campaign{
			rawCampaign("10", "Newsletter Junho", 100, 40, 10),
			automationCampaign,
			seriesCampaign,
		},
		campaignLists: map[string][]string{
			"10": {"1", "2"},
			"11": {"1", "999"},
		},
		automations: []acdomain.Automation{
			{ID: "5", Name: "[SK] Welcome", Status: "1", Entered: "30", Exited: "10"},
		},
		messages: []acdomain.Message{
			{ID: "100", CampaignID: "10", ContactID: "7", CDate: "2025-06-01 10:05:00", Opened: "1"},
			{ID: "101", CampaignID: "", ContactID: "8"},
			{ID: "102", CampaignID: "99", ContactID: "9"},
			{ID: "103", CampaignID: "11", ContactID: "7", CDate: "2025-06-02 08:00:00", ClickedCount: "2"},
		},
	}
}

func (u upstream) client(ctrl *gomock.Controller) *acmocks.MockClient {
	c := acmocks.NewMockClient(ctrl)
	c.EXPECT().ListLists(gomock.Any()).DoAndReturn(func(context.Context) *acclient.Pager[acdomain.List] {
		if u.listsErr != nil {
			return failingPager[acdomain.List](u.listsErr)
		}
		return pagerOf(u.lists)
	}).AnyTimes()
	c.EXPECT().ListCampaigns(gomock.Any()).DoAndReturn(func(context.Context) *acclient.Pager[acdomain.Campaign] {
		if u.campaignsErr != nil {
			return failingPager[acdomain.Campaign](u.campaignsErr)
		}
		return pagerOf(u.campaigns)
	}).AnyTimes()
	c.EXPECT().GetCampaignLists(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) ([]string, error) {
		return u.campaignLists[id], nil
	}).AnyTimes()
	c.EXPECT().ListAutomations(gomock.Any()).DoAndReturn(func(context.Context) *acclient.Pager[acdomain.Automation] {
		return pagerOf(u.automations)
	}).AnyTimes()
	c.EXPECT().GetAutomationCampaigns(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) ([]string, error) {
		return u.automationCampaigns[id], nil
	}).AnyTimes()
	c.EXPECT().ListMessages(gomock.Any(), syncNow.AddDate(0, 0, -90)).DoAndReturn(func(context.Context, time.Time) *acclient.Pager[acdomain.Message] {
		return pagerOf(u.messages)
	}).AnyTimes()
	return c
}

type fixture struct {
	store      *memStore
	factory    *acmocks.MockFactory
	integrator *acmocks.MockIntegrator
	publisher  *mqmocks.MockSyncEventPublisher
	service    *Service

	mu     sync.Mutex
	events []domain.SyncEvent
}

func newFixture(t *testing.T, ctrl *gomock.Controller, clients map[string]acclient.Client, accounts ...*domain.Account) *fixture {
	t.Helper()

	f := &fixture{
		store:      newMemStore(accounts...),
		factory:    acmocks.NewMockFactory(ctrl),
		integrator: acmocks.NewMockIntegrator(ctrl),
		publisher:  mqmocks.NewMockSyncEventPublisher(ctrl),
	}

	if len(clients) > 0 {
		f.factory.EXPECT().New(gomock.Any()).DoAndReturn(func(creds acclient.Credentials) acclient.Client {
			return clients[creds.AccountID]
		}).AnyTimes()
	}
	f.publisher.EXPECT().PublishSyncFinished(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e domain.SyncEvent) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.events = append(f.events, e)
		return nil
	}).AnyTimes()

	cfg := &config.Config{}
	cfg.ActiveCampaign.MessagesLookbackDays = 90
	cfg.AutoSync.MaxConcurrentJobs = 2

	f.service = NewService(f.store.repositories(), f.factory, f.integrator, f.publisher, cfg)
	f.service.now = func() time.Time { return syncNow }
	return f
}

func (f *fixture) expectContacts(count int) {
	f.integrator.EXPECT().FetchAccountInfo(gomock.Any(), gomock.Any()).
		Return(&domain.AccountContactStats{ContactCount: count, SyncedAt: syncNow}, nil).
		AnyTimes()
}

func activeAccount(id, name string) *domain.Account {
	return &domain.Account{
		ID:       id,
		Name:     name,
		BaseURL:  "https://" + id + ".api-us1.com",
		APIKey:   "key-" + id + "-0123456789",
		IsActive: true,
	}
}

func TestSyncAccount_StoresAllEntities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := sampleUpstream().client(ctrl)
	f := newFixture(t, ctrl, map[string]acclient.Client{"acc1": client}, activeAccount("acc1", "Loja"))
	f.expectContacts(1198)

	result := f.service.SyncAccount(context.Background(), "acc1", false)

	require.True(t, result.Success, result.Error)
	assert.Equal(t, 2, result.ListsSynced)
	assert.Equal(t, 3, result.CampaignsSynced)
	assert.Equal(t, 1, result.AutomationsSynced)
	assert.Equal(t, 2, result.MessagesSynced)
	assert.Equal(t, 1198, result.ContactCount)
	assert.Empty(t, result.Error)

	s := f.store
	assert.Equal(t, domain.SyncCounters{Lists: 2, Campaigns: 3, Automations: 1, Messages: 2}, s.countFor("acc1"))
	assert.Equal(t, []string{"1", "2"}, s.campaignLists["acc1:10"])
	assert.Equal(t, []string{"1"}, s.campaignLists["acc1:11"], "lista inexistente não vira vínculo")
	assert.Empty(t, s.campaignLists["acc1:12"])

	links := s.automationCs["acc1:5"]
	require.Len(t, links, 2)
	assert.Equal(t, "11", links[0].CampaignID)
	assert.Equal(t, "12", links[1].CampaignID)
	assert.Equal(t, domain.AssociationSourceHeuristic, links[0].Source)

	_, orphan := s.messages["acc1:102"]
	assert.False(t, orphan, "mensagem de campanha desconhecida é ignorada")
	_, noCampaign := s.messages["acc1:101"]
	assert.False(t, noCampaign, "mensagem sem campanha é ignorada")
	assert.True(t, s.messages["acc1:100"].WasOpened)
	assert.True(t, s.messages["acc1:103"].WasClicked)

	assert.Equal(t, 1198, s.contactStats["acc1"].ContactCount)

	jobs := s.jobsFor("acc1")
	require.Len(t, jobs, 1)
	assert.Equal(t, domain.SyncJobStatusCompleted, jobs[0].Status)
	assert.Equal(t, 2, jobs[0].ListsSynced)
	assert.Equal(t, 3, jobs[0].CampaignsSynced)
	assert.Equal(t, 1, jobs[0].AutomationsSynced)
	assert.Equal(t, 2, jobs[0].MessagesSynced)
	assert.False(t, jobs[0].IsAutomatic)
	assert.NotNil(t, jobs[0].FinishedAt)
	assert.Nil(t, jobs[0].Error)

	require.Len(t, f.events, 1)
	assert.True(t, f.events[0].Success)
	assert.Equal(t, jobs[0].ID, f.events[0].JobID)
	assert.Equal(t, 8, f.events[0].Counters.Total())
}

func TestSyncAccount_DirectAssociationWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	up := sampleUpstream()
	up.automationCampaigns = map[string][]string{"5": {"10"}}
	f := newFixture(t, ctrl, map[string]acclient.Client{"acc1": up.client(ctrl)}, activeAccount("acc1", "Loja"))
	f.expectContacts(10)

	result := f.service.SyncAccount(context.Background(), "acc1", true)
	require.True(t, result.Success, result.Error)

	links := f.store.automationCs["acc1:5"]
	require.Len(t, links, 1)
	assert.Equal(t, "10", links[0].CampaignID)
	assert.Equal(t, domain.AssociationSourceDirect, links[0].Source)
}

func TestSyncAccount_IsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := sampleUpstream().client(ctrl)
	f := newFixture(t, ctrl, map[string]acclient.Client{"acc1": client}, activeAccount("acc1", "Loja"))
	f.expectContacts(50)

	first := f.service.SyncAccount(context.Background(), "acc1", false)
	require.True(t, first.Success, first.Error)
	before := f.store.snapshot()

	second := f.service.SyncAccount(context.Background(), "acc1", false)
	require.True(t, second.Success, second.Error)

	assert.Equal(t, first.Counters(), second.Counters())
	assert.Equal(t, before, f.store.snapshot())
	assert.Len(t, f.store.jobsFor("acc1"), 2)
}

func TestSyncAccount_AccountUnavailable(t *testing.T) {
	tests := []struct {
		name      string
		accounts  []*domain.Account
		accountID string
		wantErr   error
	}{
		{
			name:      "conta inexistente",
			accountID: "missing",
			wantErr:   ErrAccountNotFound,
		},
		{
			name: "conta desativada",
			accounts: []*domain.Account{
				{ID: "acc1", Name: "Loja", BaseURL: "https://loja.api-us1.com", IsActive: false},
			},
			accountID: "acc1",
			wantErr:   ErrAccountInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// sem expectativas no factory: nenhuma chamada à API é permitida
			f := newFixture(t, ctrl, nil, tt.accounts...)

			result := f.service.SyncAccount(context.Background(), tt.accountID, false)

			assert.False(t, result.Success)
			assert.Equal(t, tt.wantErr.Error(), result.Error)
			assert.Equal(t, domain.SyncCounters{}, result.Counters())

			jobs := f.store.jobsFor(tt.accountID)
			require.Len(t, jobs, 1)
			assert.Equal(t, domain.SyncJobStatusFailed, jobs[0].Status)
			require.NotNil(t, jobs[0].Error)
			assert.Equal(t, tt.wantErr.Error(), *jobs[0].Error)
			assert.Equal(t, domain.SyncCounters{}, f.store.countFor(tt.accountID))
		})
	}
}

func TestSyncAccount_ContactsFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := sampleUpstream().client(ctrl)
	f := newFixture(t, ctrl, map[string]acclient.Client{"acc1": client}, activeAccount("acc1", "Loja"))
	f.integrator.EXPECT().FetchAccountInfo(gomock.Any(), client).Return(nil, errors.New("HTTP 500"))

	result := f.service.SyncAccount(context.Background(), "acc1", false)

	require.True(t, result.Success, result.Error)
	assert.Equal(t, 0, result.ContactCount)
	assert.Equal(t, 3, result.CampaignsSynced)
	assert.NotContains(t, f.store.contactStats, "acc1")
}

func TestSyncAccount_PhaseFailureZeroesCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	up := sampleUpstream()
	up.campaignsErr = &acclient.Error{Endpoint: "/campaigns", Err: acclient.ErrRetriesExhausted}
	f := newFixture(t, ctrl, map[string]acclient.Client{"acc1": up.client(ctrl)}, activeAccount("acc1", "Loja"))
	f.expectContacts(10)

	result := f.service.SyncAccount(context.Background(), "acc1", true)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, ErrSyncCampaigns.Error())
	assert.Equal(t, domain.SyncCounters{}, result.Counters())

	jobs := f.store.jobsFor("acc1")
	require.Len(t, jobs, 1)
	assert.Equal(t, domain.SyncJobStatusFailed, jobs[0].Status)
	assert.Equal(t, 0, jobs[0].ListsSynced)
	assert.True(t, jobs[0].IsAutomatic)

	require.Len(t, f.events, 1)
	assert.False(t, f.events[0].Success)
	assert.Equal(t, result.Error, f.events[0].Error)
}

func TestSyncAccount_RecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := sampleUpstream().client(ctrl)
	f := newFixture(t, ctrl, map[string]acclient.Client{"acc1": client}, activeAccount("acc1", "Loja"))
	f.integrator.EXPECT().FetchAccountInfo(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, acclient.Client) (*domain.AccountContactStats, error) {
			panic("nil map")
		})

	var result *domain.SyncResult
	require.NotPanics(t, func() {
		result = f.service.SyncAccount(context.Background(), "acc1", false)
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, ErrSyncPanicked.Error())
	assert.Equal(t, domain.SyncCounters{}, result.Counters())
	assert.Equal(t, domain.SyncJobStatusFailed, f.store.jobsFor("acc1")[0].Status)
}

func TestSyncAccount_CanceledCallerStillClosesJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := sampleUpstream().client(ctrl)
	f := newFixture(t, ctrl, map[string]acclient.Client{"acc1": client}, activeAccount("acc1", "Loja"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := f.service.SyncAccount(ctx, "acc1", false)

	assert.False(t, result.Success)
	jobs := f.store.jobsFor("acc1")
	require.Len(t, jobs, 1)
	assert.Equal(t, domain.SyncJobStatusFailed, jobs[0].Status)
	assert.NoError(t, f.store.finishCtxErr[jobs[0].ID], "fechamento do job usa contexto sem cancelamento")
}

func TestSyncAccounts_IsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broken := sampleUpstream()
	broken.listsErr = &acclient.Error{Endpoint: "/lists", StatusCode: 401, Body: "unauthorized"}

	clients := map[string]acclient.Client{
		"acc1": sampleUpstream().client(ctrl),
		"acc2": broken.client(ctrl),
		"acc3": sampleUpstream().client(ctrl),
	}
	f := newFixture(t, ctrl, clients,
		activeAccount("acc1", "Alfa"),
		activeAccount("acc2", "Beta"),
		activeAccount("acc3", "Gama"),
	)
	f.expectContacts(10)

	results := f.service.SyncAccounts(context.Background(), []string{"acc1", "acc2", "acc3"}, false)

	require.Len(t, results, 3)
	assert.Equal(t, "acc1", results[0].AccountID)
	assert.Equal(t, "acc2", results[1].AccountID)
	assert.Equal(t, "acc3", results[2].AccountID)

	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Contains(t, results[1].Error, ErrSyncLists.Error())
	assert.True(t, results[2].Success)

	want := domain.SyncCounters{Lists: 2, Campaigns: 3, Automations: 1, Messages: 2}
	assert.Equal(t, want, f.store.countFor("acc1"))
	assert.Equal(t, domain.SyncCounters{}, f.store.countFor("acc2"))
	assert.Equal(t, want, f.store.countFor("acc3"))
	assert.Equal(t, want, results[0].Counters())
	assert.Equal(t, want, results[2].Counters())
}

func TestSyncAllActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broken := sampleUpstream()
	broken.campaignsErr = errors.New("connection reset")

	clients := map[string]acclient.Client{
		"acc1": sampleUpstream().client(ctrl),
		"acc2": broken.client(ctrl),
	}
	inactive := activeAccount("acc3", "Inativa")
	inactive.IsActive = false

	f := newFixture(t, ctrl, clients, activeAccount("acc1", "Alfa"), activeAccount("acc2", "Beta"), inactive)
	f.expectContacts(10)

	summary, err := f.service.SyncAllActive(context.Background(), true)

	require.NoError(t, err)
	assert.False(t, summary.Success)
	assert.Equal(t, 2, summary.TotalAccounts)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 1, summary.ErrorCount)
	assert.Equal(t, domain.SyncCounters{Lists: 2, Campaigns: 3, Automations: 1, Messages: 2}, summary.Totals)

	require.Len(t, summary.Results, 2)
	assert.Equal(t, "Alfa", summary.Results[0].AccountName)
	assert.Equal(t, "Beta", summary.Results[1].AccountName)
	assert.Empty(t, f.store.jobsFor("acc3"))
}
