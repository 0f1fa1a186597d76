package activecampaign

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/acclient"
	"github.com/vfg2006/mail-insights-api/internal/domain"
)

type Integrator interface {
	FetchAccountInfo(ctx context.Context, client acclient.Client) (*domain.AccountContactStats, error)
	TestConnection(ctx context.Context, client acclient.Client) *domain.ConnectionTestResponse
}

type ActiveCampaignService struct {
	now func() time.Time
}

func New() Integrator {
	return &ActiveCampaignService{now: time.Now}
}

// FetchAccountInfo combina o total de contatos da v3 com o limite do plano da v1.
// Sem o limite o resultado ainda é válido; sem o total é erro.
func (s *ActiveCampaignService) FetchAccountInfo(ctx context.Context, client acclient.Client) (*domain.AccountContactStats, error) {
	totals, err := client.GetContactTotals(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.AccountContactStats{
		ContactCount: totals.Active(),
		SyncedAt:     s.now(),
	}

	view, err := client.GetAccountView(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Limite de contatos indisponível na API v1")
		return stats, nil
	}

	if view.SubscriberLimit > 0 {
		limit := view.SubscriberLimit
		stats.ContactLimit = &limit
	}
	return stats, nil
}

// TestConnection tenta /users/me e, se falhar, uma listagem mínima de campanhas
func (s *ActiveCampaignService) TestConnection(ctx context.Context, client acclient.Client) *domain.ConnectionTestResponse {
	user, err := client.GetCurrentUser(ctx)
	if err == nil {
		name := user.Email
		if name == "" {
			name = user.Username
		}
		return &domain.ConnectionTestResponse{
			Success: true,
			Message: "Conexão válida",
			User:    name,
		}
	}

	logrus.WithError(err).Debug("users/me indisponível, tentando campanhas")

	if err := client.ProbeCampaigns(ctx); err != nil {
		return &domain.ConnectionTestResponse{
			Success: false,
			Message: connectionErrorMessage(err),
		}
	}

	return &domain.ConnectionTestResponse{Success: true, Message: "Conexão válida"}
}

func connectionErrorMessage(err error) string {
	var acErr *acclient.Error
	if errors.As(err, &acErr) {
		switch acErr.StatusCode {
		case http.StatusForbidden:
			return "Credenciais inválidas ou sem permissão. Verifique sua API Key."
		case http.StatusUnauthorized:
			return "API Key inválida. Verifique suas credenciais."
		case http.StatusNotFound:
			return "URL inválida. Verifique a Base URL do ActiveCampaign."
		}
	}
	return "Falha ao conectar. Verifique as credenciais."
}
