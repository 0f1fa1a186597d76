package reporting

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/acclient"
	"github.com/vfg2006/mail-insights-api/infrastructure/repository"
	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/pkg/apiErrors"
	"github.com/vfg2006/mail-insights-api/pkg/utils"
)

// CampaignReport usa os totais acumulados do banco ou, com janela, os totais
// por período da API legada para cada campanha do escopo
func (s *Service) CampaignReport(ctx context.Context, filter domain.MetricsFilter) (*domain.CampaignReport, error) {
	accounts, err := s.repos.Accounts.ListAccounts(ctx, true)
	if err != nil {
		return nil, NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
	}

	accountIDs := filter.AccountIDs
	if len(accountIDs) == 0 {
		accountIDs = make([]string, 0, len(accounts))
		for _, a := range accounts {
			accountIDs = append(accountIDs, a.ID)
		}
		if len(accountIDs) == 0 {
			return emptyReport(filter.Window), nil
		}
	}

	campaigns, err := s.repos.Campaigns.ListCampaigns(ctx, domain.CampaignFilter{
		AccountIDs:  accountIDs,
		ListKeys:    filter.ListKeys,
		Statuses:    filter.Statuses,
		CampaignIDs: filter.CampaignIDs,
		OrderBy:     "sendDate",
		Limit:       s.campaignLimit,
	})
	if err != nil {
		return nil, NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if filter.Window == nil {
		metrics := make([]*domain.CampaignMetrics, 0, len(campaigns))
		for _, c := range campaigns {
			metrics = append(metrics, toCampaignMetrics(c))
		}
		return &domain.CampaignReport{
			Mode:           domain.ReportModeCumulative,
			KPI:            kpiOf(metrics),
			Campaigns:      metrics,
			TotalCampaigns: len(metrics),
		}, nil
	}

	metrics := s.windowedMetrics(ctx, campaigns, accounts, *filter.Window)
	window := *filter.Window
	return &domain.CampaignReport{
		Mode:           domain.ReportModeWindowed,
		Window:         &window,
		KPI:            kpiOf(metrics),
		Campaigns:      metrics,
		TotalCampaigns: len(metrics),
	}, nil
}

func emptyReport(window *domain.DateWindow) *domain.CampaignReport {
	mode := domain.ReportModeCumulative
	if window != nil {
		mode = domain.ReportModeWindowed
	}
	return &domain.CampaignReport{
		Mode:      mode,
		Window:    window,
		Campaigns: []*domain.CampaignMetrics{},
	}
}

// WindowDates devolve sdate e ldate para a API legada. Com início igual ao fim
// a API devolve zero, então ldate avança um dia.
func WindowDates(window domain.DateWindow) (string, string) {
	sdate := window.From.Format(time.DateOnly)
	ldate := window.To.Format(time.DateOnly)
	if window.SameDay() {
		ldate = window.To.AddDate(0, 0, 1).Format(time.DateOnly)
	}
	return sdate, ldate
}

func (s *Service) windowedMetrics(ctx context.Context, campaigns []*domain.Campaign, accounts []*domain.Account, window domain.DateWindow) []*domain.CampaignMetrics {
	sdate, ldate := WindowDates(window)

	clients := make(map[string]acclient.Client, len(accounts))
	for _, a := range accounts {
		clients[a.ID] = s.factory.New(acclient.Credentials{
			AccountID: a.ID,
			BaseURL:   a.BaseURL,
			APIKey:    a.APIKey,
		})
	}

	logrus.WithFields(logrus.Fields{
		"sdate":     sdate,
		"ldate":     ldate,
		"campaigns": len(campaigns),
	}).Info("Buscando métricas por período na API v1")

	results := make([]*domain.CampaignMetrics, len(campaigns))
	semaphore := make(chan struct{}, s.windowedConcurrency)
	var wg sync.WaitGroup

	for i, campaign := range campaigns {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(i int, campaign *domain.Campaign) {
			defer wg.Done()
			defer func() { <-semaphore }()

			m := toCampaignMetrics(campaign)
			zeroCounters(m)

			client, ok := clients[campaign.AccountID]
			if !ok {
				results[i] = m
				return
			}

			report, err := client.GetCampaignReportTotals(ctx, campaign.ID, sdate, ldate)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"account_id":  campaign.AccountID,
					"campaign_id": campaign.ID,
				}).WithError(err).Warn("Erro ao buscar métricas da campanha no período, usando zero")
				results[i] = m
				return
			}

			m.Sent = report.Sent
			m.UniqueOpens = report.Opens
			m.UniqueClicks = report.Clicks
			m.Bounces = report.Bounces
			m.Unsubscribes = report.Unsubscribes
			m.OpenRate = utils.Ratio(m.UniqueOpens, m.Sent)
			m.ClickRate = utils.Ratio(m.UniqueClicks, m.Sent)
			m.ClickToOpenRate = utils.Ratio(m.UniqueClicks, m.UniqueOpens)
			results[i] = m
		}(i, campaign)
	}

	wg.Wait()

	withSends := make([]*domain.CampaignMetrics, 0, len(results))
	for _, m := range results {
		if m.Sent > 0 {
			withSends = append(withSends, m)
		}
	}
	return withSends
}

func zeroCounters(m *domain.CampaignMetrics) {
	m.Sent = 0
	m.UniqueOpens = 0
	m.UniqueClicks = 0
	m.Bounces = 0
	m.Unsubscribes = 0
	m.OpenRate = 0
	m.ClickRate = 0
	m.ClickToOpenRate = 0
}

func toCampaignMetrics(c *domain.Campaign) *domain.CampaignMetrics {
	return &domain.CampaignMetrics{
		ID:              c.ID,
		AccountID:       c.AccountID,
		AccountName:     c.AccountName,
		Name:            c.Name,
		Status:          c.Status,
		IsAutomation:    c.IsAutomation,
		SendDate:        c.SendDate,
		Sent:            c.Sent,
		UniqueOpens:     c.UniqueOpens,
		UniqueClicks:    c.UniqueClicks,
		Bounces:         c.Bounces,
		Unsubscribes:    c.Unsubscribes,
		OpenRate:        c.OpenRate,
		ClickRate:       c.ClickRate,
		ClickToOpenRate: c.ClickToOpenRate,
	}
}

func kpiOf(metrics []*domain.CampaignMetrics) domain.KPIData {
	var kpi domain.KPIData
	for _, m := range metrics {
		kpi.Sent += m.Sent
		kpi.UniqueOpens += m.UniqueOpens
		kpi.UniqueClicks += m.UniqueClicks
	}
	kpi.OpenRate = utils.Ratio(kpi.UniqueOpens, kpi.Sent)
	kpi.ClickRate = utils.Ratio(kpi.UniqueClicks, kpi.Sent)
	kpi.ClickToOpenRate = utils.Ratio(kpi.UniqueClicks, kpi.UniqueOpens)
	return kpi
}

func (s *Service) storedCampaigns(ctx context.Context, filter domain.MetricsFilter) ([]*domain.Campaign, error) {
	sentFrom, sentTo := sentBetween(filter.Window)
	campaigns, err := s.repos.Campaigns.ListCampaigns(ctx, domain.CampaignFilter{
		AccountIDs:  filter.AccountIDs,
		ListKeys:    filter.ListKeys,
		Statuses:    filter.Statuses,
		CampaignIDs: filter.CampaignIDs,
		SentFrom:    sentFrom,
		SentTo:      sentTo,
	})
	if err != nil {
		return nil, NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return campaigns, nil
}

// AggregatedMetrics soma os contadores armazenados das campanhas do filtro
func (s *Service) AggregatedMetrics(ctx context.Context, filter domain.MetricsFilter) (*domain.AggregatedMetrics, error) {
	campaigns, err := s.storedCampaigns(ctx, filter)
	if err != nil {
		return nil, err
	}

	var t totals
	for _, c := range campaigns {
		t.add(c)
	}
	return t.aggregated(), nil
}

// MetricsByAccount agrega por conta ativa, em ordem natural de nome
func (s *Service) MetricsByAccount(ctx context.Context, filter domain.MetricsFilter) ([]*domain.AccountMetrics, error) {
	accounts, err := s.repos.Accounts.ListAccounts(ctx, true)
	if err != nil {
		return nil, NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		return utils.NaturalLess(accounts[i].Name, accounts[j].Name)
	})

	result := make([]*domain.AccountMetrics, 0, len(accounts))
	if len(accounts) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID)
	}
	filter.AccountIDs = ids

	campaigns, err := s.storedCampaigns(ctx, filter)
	if err != nil {
		return nil, err
	}

	byAccount := make(map[string]*totals, len(accounts))
	for _, c := range campaigns {
		t, ok := byAccount[c.AccountID]
		if !ok {
			t = &totals{}
			byAccount[c.AccountID] = t
		}
		t.add(c)
	}

	for _, a := range accounts {
		t := byAccount[a.ID]
		if t == nil {
			t = &totals{}
		}
		result = append(result, &domain.AccountMetrics{
			AccountID:   a.ID,
			AccountName: a.Name,
			Metrics:     t.aggregated(),
		})
	}
	return result, nil
}

// TopCampaigns ordena pelo campo pedido; apenas colunas conhecidas são aceitas
func (s *Service) TopCampaigns(ctx context.Context, metric string, limit int, filter domain.MetricsFilter) ([]*domain.CampaignMetrics, error) {
	if !repository.IsOrderable(metric) {
		return nil, NewReportError(ErrInvalidMetric, apiErrors.ErrInvalidRequest, metric)
	}
	if limit <= 0 {
		limit = defaultTopLimit
	}

	sentFrom, sentTo := sentBetween(filter.Window)
	campaigns, err := s.repos.Campaigns.ListCampaigns(ctx, domain.CampaignFilter{
		AccountIDs:  filter.AccountIDs,
		ListKeys:    filter.ListKeys,
		Statuses:    filter.Statuses,
		CampaignIDs: filter.CampaignIDs,
		SentFrom:    sentFrom,
		SentTo:      sentTo,
		OrderBy:     metric,
		Limit:       limit,
	})
	if err != nil {
		return nil, NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
	}

	result := make([]*domain.CampaignMetrics, 0, len(campaigns))
	for _, c := range campaigns {
		result = append(result, toCampaignMetrics(c))
	}
	return result, nil
}
