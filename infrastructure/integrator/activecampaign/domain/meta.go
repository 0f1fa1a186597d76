package acdomain

// Meta acompanha as respostas paginadas da API v3
type Meta struct {
	Total FlexString `json:"total"`
}

// LegacyResponse contém os campos comuns da API v1 (admin/api.php)
type LegacyResponse struct {
	ResultCode    FlexString `json:"result_code"`
	ResultMessage string     `json:"result_message"`
}

type LegacyCampaignReport struct {
	LegacyResponse
	SendAmt          FlexString `json:"send_amt"`
	UniqueOpens      FlexString `json:"uniqueopens"`
	SubscriberClicks FlexString `json:"subscriberclicks"`
	UniqueLinkClicks FlexString `json:"uniquelinkclicks"`
	TotalBounces     FlexString `json:"totalbounces"`
	Unsubscribes     FlexString `json:"unsubscribes"`
	Forwards         FlexString `json:"forwards"`
}

type LegacyAccountView struct {
	LegacyResponse
	SubscriberLimit FlexString `json:"subscriber_limit"`
}

// ErrorResponse representa o corpo de erro da API v3
type ErrorResponse struct {
	Message string `json:"message"`
	Errors  []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}
