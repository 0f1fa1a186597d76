package acclient

import (
	"context"

	"github.com/pkg/errors"

	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
)

func (c *ACClient) GetCurrentUser(ctx context.Context) (*acdomain.User, error) {
	body, err := c.get(ctx, "/users/me", nil)
	if err != nil {
		return nil, errors.Wrap(err, "buscando usuário atual")
	}

	var response acdomain.UserResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(ErrInvalidResponse, "usuário: %v", err)
	}
	return &response.User, nil
}
