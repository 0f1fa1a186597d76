package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusDraft      CampaignStatus = "draft"
	CampaignStatusScheduled  CampaignStatus = "scheduled"
	CampaignStatusSending    CampaignStatus = "sending"
	CampaignStatusPaused     CampaignStatus = "paused"
	CampaignStatusStopped    CampaignStatus = "stopped"
	CampaignStatusCompleted  CampaignStatus = "completed"
	CampaignStatusAutomation CampaignStatus = "automation"
	CampaignStatusUnknown    CampaignStatus = "unknown"
)

const CampaignTypeAutomation = "automation"

type Campaign struct {
	ID              string         `json:"id"`
	AccountID       string         `json:"accountId"`
	Name            string         `json:"name"`
	Status          CampaignStatus `json:"status"`
	Type            string         `json:"type"`
	IsAutomation    bool           `json:"isAutomation"`
	SendDate        *time.Time     `json:"sendDate,omitempty"`
	Sent            int            `json:"sent"`
	Opens           int            `json:"opens"`
	UniqueOpens     int            `json:"uniqueOpens"`
	Clicks          int            `json:"clicks"`
	UniqueClicks    int            `json:"uniqueClicks"`
	Bounces         int            `json:"bounces"`
	Unsubscribes    int            `json:"unsubscribes"`
	OpenRate        float64        `json:"openRate"`
	ClickRate       float64        `json:"clickRate"`
	ClickToOpenRate float64        `json:"clickToOpenRate"`
	RawPayload      []byte         `json:"-"`
	AccountName     string         `json:"accountName,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type CampaignList struct {
	AccountID  string `json:"accountId"`
	CampaignID string `json:"campaignId"`
	ListID     string `json:"listId"`
}

// ListKey identifica uma lista no escopo da sua conta
type ListKey struct {
	AccountID string
	ListID    string
}

type CampaignFilter struct {
	AccountIDs     []string
	ListKeys       []ListKey
	Statuses       []string
	CampaignIDs    []string
	OnlyAutomation bool
	SentFrom       *time.Time
	SentTo         *time.Time
	OrderBy        string
	Limit          int
}
