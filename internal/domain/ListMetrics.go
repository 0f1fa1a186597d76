package domain

type ListMetrics struct {
	ListID            string  `json:"listId"`
	ListName          string  `json:"listName"`
	AccountID         string  `json:"accountId"`
	AccountName       string  `json:"accountName"`
	TotalContacts     int     `json:"totalContacts"`
	ActiveContacts    int     `json:"activeContacts"`
	TotalCampaigns    int     `json:"totalCampaigns"`
	TotalSent         int     `json:"totalSent"`
	TotalOpens        int     `json:"totalOpens"`
	TotalClicks       int     `json:"totalClicks"`
	TotalBounces      int     `json:"totalBounces"`
	TotalUnsubscribes int     `json:"totalUnsubscribes"`
	OpenRate          float64 `json:"openRate"`
	ClickRate         float64 `json:"clickRate"`
	ClickToOpenRate   float64 `json:"clickToOpenRate"`
	BounceRate        float64 `json:"bounceRate"`
	UnsubscribeRate   float64 `json:"unsubscribeRate"`
}

type ListsStats struct {
	TotalLists          int     `json:"totalLists"`
	TotalContacts       int     `json:"totalContacts"`
	TotalActiveContacts int     `json:"totalActiveContacts"`
	TotalCampaigns      int     `json:"totalCampaigns"`
	TotalSent           int     `json:"totalSent"`
	AvgOpenRate         float64 `json:"avgOpenRate"`
	AvgClickRate        float64 `json:"avgClickRate"`
}

type ListReport struct {
	Lists []*ListMetrics `json:"lists"`
	Stats ListsStats     `json:"stats"`
}

type ListReportFilter struct {
	AccountIDs []string
	Window     *DateWindow
}
