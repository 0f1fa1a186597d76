package domain

import "time"

type SyncJobStatus string

const (
	SyncJobStatusRunning   SyncJobStatus = "running"
	SyncJobStatusCompleted SyncJobStatus = "completed"
	SyncJobStatusFailed    SyncJobStatus = "failed"
)

type SyncJob struct {
	ID                string        `json:"id"`
	AccountID         string        `json:"accountId"`
	AccountName       string        `json:"accountName,omitempty"`
	Status            SyncJobStatus `json:"status"`
	IsAutomatic       bool          `json:"isAutomatic"`
	ListsSynced       int           `json:"listsSynced"`
	CampaignsSynced   int           `json:"campaignsSynced"`
	AutomationsSynced int           `json:"automationsSynced"`
	MessagesSynced    int           `json:"messagesSynced"`
	StartedAt         time.Time     `json:"startedAt"`
	FinishedAt        *time.Time    `json:"finishedAt,omitempty"`
	Error             *string       `json:"error,omitempty"`
}

// SyncCounters acumula os registros sincronizados em cada etapa
type SyncCounters struct {
	Lists       int `json:"lists"`
	Campaigns   int `json:"campaigns"`
	Automations int `json:"automations"`
	Messages    int `json:"messages"`
}

func (c SyncCounters) Total() int {
	return c.Lists + c.Campaigns + c.Automations + c.Messages
}

func (c SyncCounters) Add(other SyncCounters) SyncCounters {
	return SyncCounters{
		Lists:       c.Lists + other.Lists,
		Campaigns:   c.Campaigns + other.Campaigns,
		Automations: c.Automations + other.Automations,
		Messages:    c.Messages + other.Messages,
	}
}

type SyncResult struct {
	Success           bool   `json:"success"`
	CampaignsSynced   int    `json:"campaignsSynced"`
	ListsSynced       int    `json:"listsSynced"`
	AutomationsSynced int    `json:"automationsSynced"`
	MessagesSynced    int    `json:"messagesSynced"`
	ContactCount      int    `json:"contactCount,omitempty"`
	Error             string `json:"error,omitempty"`
}

func (r SyncResult) Counters() SyncCounters {
	return SyncCounters{
		Lists:       r.ListsSynced,
		Campaigns:   r.CampaignsSynced,
		Automations: r.AutomationsSynced,
		Messages:    r.MessagesSynced,
	}
}

type AccountSyncResult struct {
	AccountID   string `json:"accountId"`
	AccountName string `json:"account"`
	SyncResult
}

type SyncAllResult struct {
	Success       bool                 `json:"success"`
	TotalAccounts int                  `json:"totalAccounts"`
	SuccessCount  int                  `json:"successCount"`
	ErrorCount    int                  `json:"errorCount"`
	Totals        SyncCounters         `json:"totals"`
	Results       []*AccountSyncResult `json:"results"`
}

// Summarize consolida os resultados; totais somam apenas as contas com sucesso
func Summarize(results []*AccountSyncResult) *SyncAllResult {
	summary := &SyncAllResult{
		TotalAccounts: len(results),
		Results:       results,
	}
	for _, r := range results {
		if r.Success {
			summary.SuccessCount++
			summary.Totals = summary.Totals.Add(r.Counters())
		} else {
			summary.ErrorCount++
		}
	}
	summary.Success = summary.ErrorCount == 0
	return summary
}

type LastAutoSyncInfo struct {
	LastSyncAt         *time.Time `json:"lastSyncAt"`
	AccountsSynced     int        `json:"accountsSynced"`
	TotalRecordsSynced int        `json:"totalRecordsSynced"`
}

// SyncEvent é publicado ao final de cada sincronização de conta
type SyncEvent struct {
	JobID       string       `json:"jobId"`
	AccountID   string       `json:"accountId"`
	IsAutomatic bool         `json:"isAutomatic"`
	Success     bool         `json:"success"`
	Counters    SyncCounters `json:"counters"`
	Error       string       `json:"error,omitempty"`
	FinishedAt  time.Time    `json:"finishedAt"`
}
