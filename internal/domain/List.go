package domain

import "time"

type List struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"accountId"`
	Name           string    `json:"name"`
	ActiveContacts *int      `json:"activeContacts,omitempty"`
	TotalContacts  *int      `json:"totalContacts,omitempty"`
	RawPayload     []byte    `json:"-"`
	AccountName    string    `json:"accountName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
