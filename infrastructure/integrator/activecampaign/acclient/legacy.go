package acclient

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
)

const (
	actionAccountView          = "account_view"
	actionCampaignReportTotals = "campaign_report_totals"
)

func checkLegacy(action string, resp acdomain.LegacyResponse) error {
	if code, ok := resp.ResultCode.Int(); ok && code == 1 && resp.ResultCode != "" {
		return nil
	}
	return &LegacyError{Action: action, Message: resp.ResultMessage}
}

// GetAccountView busca o limite de contatos do plano, só exposto pela API v1
func (c *ACClient) GetAccountView(ctx context.Context) (*acdomain.AccountView, error) {
	body, err := c.getLegacy(ctx, actionAccountView, nil)
	if err != nil {
		return nil, errors.Wrap(err, "consultando account_view")
	}

	var response acdomain.LegacyAccountView
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(ErrInvalidResponse, "account_view: %v", err)
	}
	if err := checkLegacy(actionAccountView, response.LegacyResponse); err != nil {
		return nil, err
	}

	limit, ok := response.SubscriberLimit.Int()
	if !ok || limit < 0 {
		return nil, errors.Wrapf(ErrInvalidResponse, "subscriber_limit inválido: %q", response.SubscriberLimit)
	}
	return &acdomain.AccountView{SubscriberLimit: limit}, nil
}

// GetCampaignReportTotals busca métricas de uma campanha entre sdate e ldate (YYYY-MM-DD).
// Datas vazias não são enviadas.
func (c *ACClient) GetCampaignReportTotals(ctx context.Context, campaignID, sdate, ldate string) (*acdomain.CampaignReportTotals, error) {
	params := url.Values{}
	params.Set("campaignid", campaignID)
	if sdate != "" {
		params.Set("sdate", sdate)
	}
	if ldate != "" {
		params.Set("ldate", ldate)
	}

	body, err := c.getLegacy(ctx, actionCampaignReportTotals, params)
	if err != nil {
		return nil, errors.Wrapf(err, "relatório da campanha %s", campaignID)
	}

	var response acdomain.LegacyCampaignReport
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(ErrInvalidResponse, "campaign_report_totals: %v", err)
	}
	if err := checkLegacy(actionCampaignReportTotals, response.LegacyResponse); err != nil {
		return nil, err
	}

	clicks := response.SubscriberClicks
	if clicks == "" {
		clicks = response.UniqueLinkClicks
	}

	return &acdomain.CampaignReportTotals{
		Sent:         intOrZero(response.SendAmt),
		Opens:        intOrZero(response.UniqueOpens),
		Clicks:       intOrZero(clicks),
		Bounces:      intOrZero(response.TotalBounces),
		Unsubscribes: intOrZero(response.Unsubscribes),
		Forwards:     intOrZero(response.Forwards),
	}, nil
}

func intOrZero(v acdomain.FlexString) int {
	n, ok := v.Int()
	if !ok {
		return 0
	}
	return n
}
