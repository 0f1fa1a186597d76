package acclient

import (
	"context"
	"net/url"
	"time"

	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
)

// ListMessages percorre as mensagens criadas a partir de since, mais recentes primeiro
func (c *ACClient) ListMessages(ctx context.Context, since time.Time) *Pager[acdomain.Message] {
	query := url.Values{}
	query.Set("filters[cdate_gte]", since.UTC().Format(time.RFC3339))
	query.Set("orders[cdate]", "DESC")
	return pagerFor[acdomain.Message](c, "/messages", "messages", query)
}
