package acdomain

type Message struct {
	ID               string     `json:"id"`
	CampaignID       FlexString `json:"campaignid"`
	ContactID        FlexString `json:"contactid"`
	CDate            string     `json:"cdate"`
	Sent             string     `json:"sent"`
	OpenedCount      FlexString `json:"opened_count"`
	ClickedCount     FlexString `json:"clicked_count"`
	LinkClickedCount FlexString `json:"link_clicked_count"`
	Opened           FlexString `json:"opened"`
	Clicked          FlexString `json:"clicked"`
	Bounced          FlexString `json:"bounced"`
	BounceType       string     `json:"bounce_type"`
	Raw              []byte     `json:"-"`
}
