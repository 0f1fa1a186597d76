package reporting

import (
	"context"
	"sort"

	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/pkg/apiErrors"
	"github.com/vfg2006/mail-insights-api/pkg/utils"
)

// AutomationMetrics cruza os vínculos armazenados com as campanhas enviadas na janela
func (s *Service) AutomationMetrics(ctx context.Context, filter domain.AutomationReportFilter) (*domain.AutomationReport, error) {
	automations, err := s.repos.Automations.ListAutomations(ctx, domain.AutomationFilter{
		AccountIDs: filter.AccountIDs,
		Status:     filter.Status,
	})
	if err != nil {
		return nil, NewReportError(ErrFetchData, apiErrors.ErrDatabaseOperation, err.Error())
	}

	links, err := s.repos.Automations.ListAutomationCampaigns(ctx, filter.AccountIDs)
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

	linksByAutomation := make(map[string][]*domain.AutomationCampaign)
	for _, link := range links {
		key := campaignKey(link.AccountID, link.AutomationID)
		linksByAutomation[key] = append(linksByAutomation[key], link)
	}

	report := &domain.AutomationReport{
		WithActivity:    make([]*domain.AutomationMetrics, 0),
		WithoutActivity: make([]*domain.AutomationMetrics, 0),
	}

	for _, automation := range automations {
		m := automationMetrics(automation, linksByAutomation[campaignKey(automation.AccountID, automation.ID)], campaignsByKey)

		report.Stats.Total.Add(m)
		if m.TotalSent > 0 {
			report.WithActivity = append(report.WithActivity, m)
			report.Stats.WithActivity.Add(m)
		} else {
			report.WithoutActivity = append(report.WithoutActivity, m)
			report.Stats.WithoutActivity.Add(m)
		}
	}

	sort.SliceStable(report.WithActivity, func(i, j int) bool {
		return report.WithActivity[i].OpenRate > report.WithActivity[j].OpenRate
	})
	sort.SliceStable(report.WithoutActivity, func(i, j int) bool {
		return utils.NaturalLess(report.WithoutActivity[i].Name, report.WithoutActivity[j].Name)
	})

	return report, nil
}

func automationMetrics(a *domain.Automation, links []*domain.AutomationCampaign, campaigns map[string]*domain.Campaign) *domain.AutomationMetrics {
	var t totals
	source := domain.AssociationSource("")

	for _, link := range links {
		c, ok := campaigns[campaignKey(link.AccountID, link.CampaignID)]
		if !ok {
			continue
		}
		t.add(c)
		if source != domain.AssociationSourceDirect {
			source = link.Source
		}
	}

	m := &domain.AutomationMetrics{
		ID:                a.ID,
		AccountID:         a.AccountID,
		AccountName:       a.AccountName,
		Name:              a.Name,
		Status:            a.Status,
		Entered:           a.Entered,
		TotalCampaigns:    t.campaigns,
		TotalSent:         t.sent,
		TotalOpens:        t.uniqueOpens,
		TotalClicks:       t.uniqueClicks,
		OpenRate:          t.openRate(),
		ClickRate:         t.clickRate(),
		ClickToOpenRate:   t.clickToOpenRate(),
		AssociationSource: source,
		LastUpdated:       a.UpdatedAt,
	}
	m.PerformanceBadge = PerformanceBadgeFor(m.TotalCampaigns, m.OpenRate)
	return m
}

// PerformanceBadgeFor classifica a automação pela taxa de abertura
func PerformanceBadgeFor(totalCampaigns int, openRate float64) domain.PerformanceBadge {
	switch {
	case totalCampaigns == 0:
		return domain.PerformanceNone
	case openRate >= 0.4:
		return domain.PerformanceExcellent
	case openRate >= 0.3:
		return domain.PerformanceGood
	case openRate >= 0.2:
		return domain.PerformanceAverage
	default:
		return domain.PerformanceLow
	}
}
