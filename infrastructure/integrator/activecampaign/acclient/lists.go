package acclient

import (
	"context"

	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
)

func (c *ACClient) ListLists(ctx context.Context) *Pager[acdomain.List] {
	return pagerFor[acdomain.List](c, "/lists", "lists", nil)
}
