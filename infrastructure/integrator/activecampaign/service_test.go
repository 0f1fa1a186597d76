package activecampaign

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/acclient"
	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
	"github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/mocks"
)

func TestFetchAccountInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	syncedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	service := &ActiveCampaignService{now: func() time.Time { return syncedAt }}

	tests := []struct {
		name      string
		setup     func(client *mocks.MockClient)
		wantErr   bool
		wantCount int
		wantLimit *int
	}{
		{
			name: "total e limite disponíveis",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetContactTotals(gomock.Any()).Return(&acdomain.ContactTotals{Total: 1200, Deleted: 2}, nil)
				client.EXPECT().GetAccountView(gomock.Any()).Return(&acdomain.AccountView{SubscriberLimit: 2500}, nil)
			},
			wantCount: 1198,
			wantLimit: intPtr(2500),
		},
		{
			name: "limite indisponível não é erro",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetContactTotals(gomock.Any()).Return(&acdomain.ContactTotals{Total: 10}, nil)
				client.EXPECT().GetAccountView(gomock.Any()).Return(nil, &acclient.LegacyError{Action: "account_view"})
			},
			wantCount: 10,
		},
		{
			name: "falha no total é erro",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetContactTotals(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			stats, err := service.FetchAccountInfo(context.Background(), client)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, stats.ContactCount)
			assert.Equal(t, tt.wantLimit, stats.ContactLimit)
			assert.Equal(t, syncedAt, stats.SyncedAt)
		})
	}
}

func TestTestConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New()

	tests := []struct {
		name        string
		setup       func(client *mocks.MockClient)
		wantSuccess bool
		wantUser    string
		wantMessage string
	}{
		{
			name: "users/me responde",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetCurrentUser(gomock.Any()).Return(&acdomain.User{Email: "admin@example.com"}, nil)
			},
			wantSuccess: true,
			wantUser:    "admin@example.com",
			wantMessage: "Conexão válida",
		},
		{
			name: "fallback para campanhas",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetCurrentUser(gomock.Any()).Return(nil, &acclient.Error{Endpoint: "/users/me", StatusCode: http.StatusForbidden})
				client.EXPECT().ProbeCampaigns(gomock.Any()).Return(nil)
			},
			wantSuccess: true,
			wantMessage: "Conexão válida",
		},
		{
			name: "api key inválida",
			setup: func(client *mocks.MockClient) {
				unauthorized := &acclient.Error{Endpoint: "/campaigns", StatusCode: http.StatusUnauthorized}
				client.EXPECT().GetCurrentUser(gomock.Any()).Return(nil, unauthorized)
				client.EXPECT().ProbeCampaigns(gomock.Any()).Return(unauthorized)
			},
			wantMessage: "API Key inválida. Verifique suas credenciais.",
		},
		{
			name: "falha genérica",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetCurrentUser(gomock.Any()).Return(nil, errors.New("dns"))
				client.EXPECT().ProbeCampaigns(gomock.Any()).Return(errors.New("dns"))
			},
			wantMessage: "Falha ao conectar. Verifique as credenciais.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			resp := service.TestConnection(context.Background(), client)
			assert.Equal(t, tt.wantSuccess, resp.Success)
			assert.Equal(t, tt.wantUser, resp.User)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func intPtr(n int) *int {
	return &n
}
