package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/acclient"
	"github.com/vfg2006/mail-insights-api/infrastructure/repository"
	"github.com/vfg2006/mail-insights-api/internal/config"
	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/pkg/utils"
)

const (
	defaultCampaignLimit       = 100
	defaultWindowedConcurrency = 5
	defaultTopLimit            = 10
	lastAutoSyncWindow         = 30 * time.Minute
)

type Reporter interface {
	CampaignReport(ctx context.Context, filter domain.MetricsFilter) (*domain.CampaignReport, error)
	AggregatedMetrics(ctx context.Context, filter domain.MetricsFilter) (*domain.AggregatedMetrics, error)
	MetricsByAccount(ctx context.Context, filter domain.MetricsFilter) ([]*domain.AccountMetrics, error)
	TopCampaigns(ctx context.Context, metric string, limit int, filter domain.MetricsFilter) ([]*domain.CampaignMetrics, error)
	AutomationMetrics(ctx context.Context, filter domain.AutomationReportFilter) (*domain.AutomationReport, error)
	ListMetrics(ctx context.Context, filter domain.ListReportFilter) (*domain.ListReport, error)
	TopLists(ctx context.Context, metric string, limit int, filter domain.ListReportFilter) ([]*domain.ListMetrics, error)
	SyncHistory(ctx context.Context, accountID string, limit int) ([]*domain.SyncJob, error)
	LastAutoSync(ctx context.Context) (*domain.LastAutoSyncInfo, error)
}

type Repositories struct {
	Accounts    repository.AccountRepository
	Lists       repository.ListRepository
	Campaigns   repository.CampaignRepository
	Automations repository.AutomationRepository
	Jobs        repository.SyncJobRepository
}

type Service struct {
	repos               Repositories
	factory             acclient.Factory
	campaignLimit       int
	windowedConcurrency int
}

func NewService(repos Repositories, factory acclient.Factory, cfg *config.Config) *Service {
	campaignLimit := cfg.Reporting.CampaignLimit
	if campaignLimit <= 0 {
		campaignLimit = defaultCampaignLimit
	}
	concurrency := cfg.Reporting.WindowedConcurrency
	if concurrency <= 0 {
		concurrency = defaultWindowedConcurrency
	}

	return &Service{
		repos:               repos,
		factory:             factory,
		campaignLimit:       campaignLimit,
		windowedConcurrency: concurrency,
	}
}

// totals acumula os contadores usados por todos os relatórios
type totals struct {
	campaigns    int
	sent         int
	opens        int
	uniqueOpens  int
	clicks       int
	uniqueClicks int
	bounces      int
	unsubscribes int
}

func (t *totals) add(c *domain.Campaign) {
	t.campaigns++
	t.sent += c.Sent
	t.opens += c.Opens
	t.uniqueOpens += c.UniqueOpens
	t.clicks += c.Clicks
	t.uniqueClicks += c.UniqueClicks
	t.bounces += c.Bounces
	t.unsubscribes += c.Unsubscribes
}

func (t totals) openRate() float64        { return utils.Ratio(t.uniqueOpens, t.sent) }
func (t totals) clickRate() float64       { return utils.Ratio(t.uniqueClicks, t.sent) }
func (t totals) clickToOpenRate() float64 { return utils.Ratio(t.uniqueClicks, t.uniqueOpens) }
func (t totals) bounceRate() float64      { return utils.Ratio(t.bounces, t.sent) }
func (t totals) unsubscribeRate() float64 { return utils.Ratio(t.unsubscribes, t.sent) }

func (t totals) aggregated() *domain.AggregatedMetrics {
	return &domain.AggregatedMetrics{
		Sent:            t.sent,
		Opens:           t.opens,
		UniqueOpens:     t.uniqueOpens,
		Clicks:          t.clicks,
		UniqueClicks:    t.uniqueClicks,
		Bounces:         t.bounces,
		Unsubscribes:    t.unsubscribes,
		OpenRate:        t.openRate(),
		ClickRate:       t.clickRate(),
		ClickToOpenRate: t.clickToOpenRate(),
		BounceRate:      t.bounceRate(),
		UnsubscribeRate: t.unsubscribeRate(),
	}
}

// sentBetween converte a janela em limites de send_date
func sentBetween(window *domain.DateWindow) (*time.Time, *time.Time) {
	if window == nil {
		return nil, nil
	}
	from, to := window.Bounds()
	return &from, &to
}

func campaignKey(accountID, campaignID string) string {
	return accountID + ":" + campaignID
}
