package domain

import "time"

type AutomationStatus string

const (
	AutomationStatusActive   AutomationStatus = "active"
	AutomationStatusInactive AutomationStatus = "inactive"
)

type Automation struct {
	ID          string           `json:"id"`
	AccountID   string           `json:"accountId"`
	Name        string           `json:"name"`
	Status      AutomationStatus `json:"status"`
	Entered     int              `json:"entered"`
	Completed   int              `json:"completed"`
	Active      int              `json:"active"`
	RawPayload  []byte           `json:"-"`
	AccountName string           `json:"accountName,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// AssociationSource indica como o vínculo automação-campanha foi obtido
type AssociationSource string

const (
	AssociationSourceDirect    AssociationSource = "direct"
	AssociationSourceHeuristic AssociationSource = "heuristic"
)

type AutomationCampaign struct {
	AccountID    string            `json:"accountId"`
	AutomationID string            `json:"automationId"`
	CampaignID   string            `json:"campaignId"`
	Source       AssociationSource `json:"source"`
}

type AutomationFilter struct {
	AccountIDs []string
	Status     string
}
