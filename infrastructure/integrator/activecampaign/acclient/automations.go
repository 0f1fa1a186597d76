package acclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"

	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
)

func (c *ACClient) ListAutomations(ctx context.Context) *Pager[acdomain.Automation] {
	return pagerFor[acdomain.Automation](c, "/automations", "automations", nil)
}

// GetAutomationCampaigns consulta a relação direta automação -> campanhas.
// Uma resposta vazia é válida e significa que não há relação registrada.
func (c *ACClient) GetAutomationCampaigns(ctx context.Context, automationID string) ([]string, error) {
	endpoint := fmt.Sprintf("/automations/%s/campaigns", url.PathEscape(automationID))
	body, err := c.get(ctx, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "buscando campanhas da automação %s", automationID)
	}

	var response acdomain.AutomationCampaignsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(ErrInvalidResponse, "campanhas da automação %s: %v", automationID, err)
	}

	ids := make([]string, 0, len(response.Campaigns))
	seen := make(map[string]struct{}, len(response.Campaigns))
	for _, ref := range response.Campaigns {
		id := ref.CampaignRef()
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
