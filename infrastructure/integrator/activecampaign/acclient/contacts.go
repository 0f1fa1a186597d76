package acclient

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
)

// GetContactTotals lê meta.total de contatos ativos e desconta os excluídos da primeira página
func (c *ACClient) GetContactTotals(ctx context.Context) (*acdomain.ContactTotals, error) {
	query := url.Values{}
	query.Set("status", "1")
	query.Set("limit", "100")

	body, err := c.get(ctx, "/contacts", query)
	if err != nil {
		return nil, errors.Wrap(err, "buscando total de contatos")
	}

	var response acdomain.ContactsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(ErrInvalidResponse, "contatos: %v", err)
	}

	total, ok := response.Meta.Total.Int()
	if !ok || response.Meta.Total == "" {
		return nil, errors.Wrap(ErrInvalidResponse, "meta.total ausente na listagem de contatos")
	}

	deleted := 0
	for _, contact := range response.Contacts {
		if contact.Deleted.String() == "1" {
			deleted++
		}
	}

	return &acdomain.ContactTotals{Total: total, Deleted: deleted}, nil
}
