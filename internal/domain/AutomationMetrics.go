package domain

import "time"

type PerformanceBadge string

const (
	PerformanceExcellent PerformanceBadge = "excellent"
	PerformanceGood      PerformanceBadge = "good"
	PerformanceAverage   PerformanceBadge = "average"
	PerformanceLow       PerformanceBadge = "low"
	PerformanceNone      PerformanceBadge = "none"
)

type AutomationMetrics struct {
	ID                string            `json:"id"`
	AccountID         string            `json:"accountId"`
	AccountName       string            `json:"accountName"`
	Name              string            `json:"name"`
	Status            AutomationStatus  `json:"status"`
	Entered           int               `json:"entered"`
	TotalCampaigns    int               `json:"totalCampaigns"`
	TotalSent         int               `json:"totalSent"`
	TotalOpens        int               `json:"totalOpens"`
	TotalClicks       int               `json:"totalClicks"`
	OpenRate          float64           `json:"openRate"`
	ClickRate         float64           `json:"clickRate"`
	ClickToOpenRate   float64           `json:"clickToOpenRate"`
	AssociationSource AssociationSource `json:"associationSource,omitempty"`
	LastUpdated       time.Time         `json:"lastUpdated"`
	PerformanceBadge  PerformanceBadge  `json:"performanceBadge"`
}

type AutomationStats struct {
	TotalAutomations      int `json:"totalAutomations"`
	ActiveAutomations     int `json:"activeAutomations"`
	TotalEntered          int `json:"totalEntered"`
	AutomationsWithEmails int `json:"automationsWithEmails"`
}

type AutomationStatsSummary struct {
	Total           AutomationStats `json:"total"`
	WithActivity    AutomationStats `json:"withActivity"`
	WithoutActivity AutomationStats `json:"withoutActivity"`
}

type AutomationReport struct {
	WithActivity    []*AutomationMetrics   `json:"withActivity"`
	WithoutActivity []*AutomationMetrics   `json:"withoutActivity"`
	Stats           AutomationStatsSummary `json:"stats"`
}

type AutomationReportFilter struct {
	AccountIDs []string
	Status     string
	Window     *DateWindow
}

func (s *AutomationStats) Add(m *AutomationMetrics) {
	s.TotalAutomations++
	if m.Status == AutomationStatusActive {
		s.ActiveAutomations++
	}
	s.TotalEntered += m.Entered
	if m.TotalCampaigns > 0 {
		s.AutomationsWithEmails++
	}
}
