package domain

import "time"

// DateWindow é um intervalo de dias inclusivo, sem componente de hora
type DateWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (w DateWindow) SameDay() bool {
	return w.From.Format(time.DateOnly) == w.To.Format(time.DateOnly)
}

// Bounds retorna o início do primeiro dia e o fim do último dia
func (w DateWindow) Bounds() (time.Time, time.Time) {
	from := time.Date(w.From.Year(), w.From.Month(), w.From.Day(), 0, 0, 0, 0, w.From.Location())
	to := time.Date(w.To.Year(), w.To.Month(), w.To.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), w.To.Location())
	return from, to
}

type MetricsFilter struct {
	AccountIDs  []string
	ListKeys    []ListKey
	Statuses    []string
	CampaignIDs []string
	Window      *DateWindow
}

type ReportMode string

const (
	ReportModeCumulative ReportMode = "cumulative"
	ReportModeWindowed   ReportMode = "windowed"
)

type KPIData struct {
	Sent            int     `json:"sent"`
	UniqueOpens     int     `json:"uniqueOpens"`
	UniqueClicks    int     `json:"uniqueClicks"`
	OpenRate        float64 `json:"openRate"`
	ClickRate       float64 `json:"clickRate"`
	ClickToOpenRate float64 `json:"clickToOpenRate"`
}

type CampaignMetrics struct {
	ID              string         `json:"id"`
	AccountID       string         `json:"accountId"`
	AccountName     string         `json:"accountName"`
	Name            string         `json:"name"`
	Status          CampaignStatus `json:"status"`
	IsAutomation    bool           `json:"isAutomation"`
	SendDate        *time.Time     `json:"sendDate,omitempty"`
	Sent            int            `json:"sent"`
	UniqueOpens     int            `json:"uniqueOpens"`
	UniqueClicks    int            `json:"uniqueClicks"`
	Bounces         int            `json:"bounces"`
	Unsubscribes    int            `json:"unsubscribes"`
	OpenRate        float64        `json:"openRate"`
	ClickRate       float64        `json:"clickRate"`
	ClickToOpenRate float64        `json:"clickToOpenRate"`
}

type CampaignReport struct {
	Mode           ReportMode         `json:"mode"`
	Window         *DateWindow        `json:"window,omitempty"`
	KPI            KPIData            `json:"kpiData"`
	Campaigns      []*CampaignMetrics `json:"campaigns"`
	TotalCampaigns int                `json:"totalCampaigns"`
}

type AggregatedMetrics struct {
	Sent            int     `json:"sent"`
	Opens           int     `json:"opens"`
	UniqueOpens     int     `json:"uniqueOpens"`
	Clicks          int     `json:"clicks"`
	UniqueClicks    int     `json:"uniqueClicks"`
	Bounces         int     `json:"bounces"`
	Unsubscribes    int     `json:"unsubscribes"`
	OpenRate        float64 `json:"openRate"`
	ClickRate       float64 `json:"clickRate"`
	ClickToOpenRate float64 `json:"clickToOpenRate"`
	BounceRate      float64 `json:"bounceRate"`
	UnsubscribeRate float64 `json:"unsubscribeRate"`
}

type AccountMetrics struct {
	AccountID   string             `json:"accountId"`
	AccountName string             `json:"accountName"`
	Metrics     *AggregatedMetrics `json:"metrics"`
}
