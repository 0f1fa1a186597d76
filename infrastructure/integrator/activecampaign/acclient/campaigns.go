package acclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
)

// ListCampaigns percorre as campanhas da mais recente para a mais antiga
func (c *ACClient) ListCampaigns(ctx context.Context) *Pager[acdomain.Campaign] {
	query := url.Values{}
	query.Set("orders[sdate]", "DESC")
	return pagerFor[acdomain.Campaign](c, "/campaigns", "campaigns", query)
}

// GetCampaignLists devolve os IDs das listas da campanha.
// Falhas viram lista vazia; a ausência de relação não é erro.
func (c *ACClient) GetCampaignLists(ctx context.Context, campaignID string) ([]string, error) {
	endpoint := fmt.Sprintf("/campaigns/%s/campaignLists", url.PathEscape(campaignID))
	body, err := c.get(ctx, endpoint, nil)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
		}).WithError(err).Warn("Não foi possível buscar listas da campanha")
		return []string{}, nil
	}

	var response acdomain.CampaignListsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithField("campaign_id", campaignID).WithError(err).Warn("Resposta de campaignLists inválida")
		return []string{}, nil
	}

	ids := make([]string, 0, len(response.CampaignLists))
	for _, link := range response.CampaignLists {
		if ref := link.ListRef(); ref != "" {
			ids = append(ids, ref)
		}
	}
	return ids, nil
}

// ProbeCampaigns verifica o acesso pedindo uma única campanha
func (c *ACClient) ProbeCampaigns(ctx context.Context) error {
	query := url.Values{}
	query.Set("limit", "1")
	if _, err := c.get(ctx, "/campaigns", query); err != nil {
		return errors.Wrap(err, "sondando campanhas")
	}
	return nil
}
