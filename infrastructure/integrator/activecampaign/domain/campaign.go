package acdomain

// Campaign representa uma campanha retornada por /api/3/campaigns
type Campaign struct {
	ID               string     `json:"id"`
	Type             string     `json:"type"`
	Name             string     `json:"name"`
	Status           FlexString `json:"status"`
	Automation       FlexString `json:"automation"`
	SeriesID         FlexString `json:"seriesid"`
	SendAmt          FlexString `json:"send_amt"`
	TotalAmt         FlexString `json:"total_amt"`
	Opens            FlexString `json:"opens"`
	UniqueOpens      FlexString `json:"uniqueopens"`
	LinkClicks       FlexString `json:"linkclicks"`
	UniqueLinkClicks FlexString `json:"uniquelinkclicks"`
	HardBounces      FlexString `json:"hardbounces"`
	SoftBounces      FlexString `json:"softbounces"`
	Unsubscribes     FlexString `json:"unsubscribes"`
	SDate            string     `json:"sdate"`
	LDate            string     `json:"ldate"`
	Raw              []byte     `json:"-"`
}

// CampaignListLink relaciona campanha e lista em /campaigns/{id}/campaignLists
type CampaignListLink struct {
	ID     string     `json:"id"`
	List   FlexString `json:"list"`
	ListID FlexString `json:"listid"`
}

func (l CampaignListLink) ListRef() string {
	if l.List != "" {
		return l.List.String()
	}
	return l.ListID.String()
}

type CampaignListsResponse struct {
	CampaignLists []CampaignListLink `json:"campaignLists"`
}

// CampaignReportTotals é o resultado de campaign_report_totals da API legada
type CampaignReportTotals struct {
	Sent         int
	Opens        int
	Clicks       int
	Bounces      int
	Unsubscribes int
	Forwards     int
}
