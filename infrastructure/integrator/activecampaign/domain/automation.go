package acdomain

type Automation struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Status  FlexString `json:"status"`
	CDate   string     `json:"cdate"`
	MDate   string     `json:"mdate"`
	Entered FlexString `json:"entered"`
	Exited  FlexString `json:"exited"`
	Raw     []byte     `json:"-"`
}

type AutomationCampaignRef struct {
	ID       FlexString `json:"id"`
	Campaign FlexString `json:"campaign"`
}

// CampaignRef devolve o ID da campanha, priorizando o campo explícito
func (r AutomationCampaignRef) CampaignRef() string {
	if r.Campaign != "" {
		return r.Campaign.String()
	}
	return r.ID.String()
}

type AutomationCampaignsResponse struct {
	Campaigns []AutomationCampaignRef `json:"campaigns"`
}
