package reporting

import (
	"context"
	"sort"

	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/pkg/apiErrors"
	"github.com/vfg2006/mail-insights-api/pkg/utils"
)

var listMetricValues = map[string]func(*domain.ListMetrics) float64{
	"openRate":        func(m *domain.ListMetrics) float64 { return m.OpenRate },
	"clickRate":       func(m *domain.ListMetrics) float64 { return m.ClickRate },
	"clickToOpenRate": func(m *domain.ListMetrics) float64 { return m.ClickToOpenRate },
	"totalCampaigns":  func(m *domain.ListMetrics) float64 { return float64(m.TotalCampaigns) },
}

// ListMetrics agrega as campanhas vinculadas a cada lista das contas ativas
func (s *Service) ListMetrics(ctx context.Context, filter domain.ListReportFilter) (*domain.ListReport, error) {
	metrics, err := s.listMetrics(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := domain.ListsStats{TotalLists: len(metrics)}
	var openRates, clickRates float64
	for _, m := range metrics {
		stats.TotalContacts += m.TotalContacts
		stats.TotalActiveContacts += m.ActiveContacts
		stats.TotalCampaigns += m.TotalCampaigns
		stats.TotalSent += m.TotalSent
		openRates += m.OpenRate
		clickRates += m.ClickRate
	}
	stats.AvgOpenRate = utils.RatioFloat(openRates, float64(len(metrics)))
	stats.AvgClickRate = utils.RatioFloat(clickRates, float64(len(metrics)))

	return &domain.ListReport{Lists: metrics, Stats: stats}, nil
}

// TopLists considera apenas listas com envios no período
func (s *Service) TopLists(ctx context.Context, metric string, limit int, filter domain.ListReportFilter) ([]*domain.ListMetrics, error) {
	value, ok := listMetricValues[metric]
	if !ok {
		return nil, NewReportError(ErrInvalidMetric, apiErrors.ErrInvalidRequest, metric)
	}
	if limit <= 0 {
		limit = defaultTopLimit
	}

	metrics, err := s.listMetrics(ctx, filter)
	if err != nil {
		return nil, err
	}

	withSends := make([]*domain.ListMetrics, 0, len(metrics))
	for _, m := range metrics {
		if m.TotalSent > 0 {
			withSends = append(withSends, m)
		}
	}

	sort.SliceStable(withSends, func(i, j int) bool {
		return value(withSends[i]) > value(withSends[j])
	})

	if len(withSends) > limit {
		withSends = withSends[:limit]
	}
	return withSends, nil
}

func (s *Service) listMetrics(ctx context.Context, filter domain.ListReportFilter) ([]*domain.ListMetrics, error) {
	lists, err := s.repos.Lists.ListLists(ctx, filter.AccountIDs)
	if err != nil {
		return nil, NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
	}

	links, err := s.repos.Campaigns.ListCampaignLinks(ctx, filter.AccountIDs)
	if err != nil {
		return nil, NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
	}

	sentFrom, sentTo := sentBetween(filter.Window)
	campaigns, err := s.repos.Campaigns.ListCampaigns(ctx, domain.CampaignFilter{
		AccountIDs: filter.AccountIDs,
		SentFrom:   sentFrom,
		SentTo:     sentTo,
	})
	if err != nil {
		return nil, NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
	}

	campaignsByKey := make(map[string]*domain.Campaign, len(campaigns))
	for _, c := range campaigns {
		campaignsByKey[campaignKey(c.AccountID, c.ID)] = c
	}

	byList := make(map[string]*totals)
	for _, link := range links {
		c, ok := campaignsByKey[campaignKey(link.AccountID, link.CampaignID)]
		if !ok {
			continue
		}
		key := campaignKey(link.AccountID, link.ListID)
		t, ok := byList[key]
		if !ok {
			t = &totals{}
			byList[key] = t
		}
		t.add(c)
	}

	metrics := make([]*domain.ListMetrics, 0, len(lists))
	for _, l := range lists {
		t := byList[campaignKey(l.AccountID, l.ID)]
		if t == nil {
			t = &totals{}
		}

		m := &domain.ListMetrics{
			ListID:            l.ID,
			ListName:          l.Name,
			AccountID:         l.AccountID,
			AccountName:       l.AccountName,
			TotalCampaigns:    t.campaigns,
			TotalSent:         t.sent,
			TotalOpens:        t.uniqueOpens,
			TotalClicks:       t.uniqueClicks,
			TotalBounces:      t.bounces,
			TotalUnsubscribes: t.unsubscribes,
			OpenRate:          t.openRate(),
			ClickRate:         t.clickRate(),
			ClickToOpenRate:   t.clickToOpenRate(),
			BounceRate:        t.bounceRate(),
			UnsubscribeRate:   t.unsubscribeRate(),
		}
		if l.TotalContacts != nil {
			m.TotalContacts = *l.TotalContacts
		}
		if l.ActiveContacts != nil {
			m.ActiveContacts = *l.ActiveContacts
		}
		metrics = append(metrics, m)
	}

	return metrics, nil
}
