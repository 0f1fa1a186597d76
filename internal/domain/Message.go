package domain

import "time"

// CampaignMessage é um envio individual de uma campanha para um contato
type CampaignMessage struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"accountId"`
	CampaignID string    `json:"campaignId"`
	ContactID  *string   `json:"contactId,omitempty"`
	SentAt     time.Time `json:"sentAt"`
	WasOpened  bool      `json:"wasOpened"`
	WasClicked bool      `json:"wasClicked"`
	WasBounced bool      `json:"wasBounced"`
	RawPayload []byte    `json:"-"`
}
