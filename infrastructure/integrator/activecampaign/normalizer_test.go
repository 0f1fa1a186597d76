package activecampaign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
	"github.com/vfg2006/mail-insights-api/internal/domain"
)

func TestNormalizeCampaign_Status(t *testing.T) {
	tests := []struct {
		name       string
		raw        acdomain.Campaign
		wantStatus domain.CampaignStatus
		wantType   string
		wantAuto   bool
	}{
		{name: "rascunho", raw: acdomain.Campaign{Status: "0", Type: "single"}, wantStatus: domain.CampaignStatusDraft, wantType: "single"},
		{name: "agendada", raw: acdomain.Campaign{Status: "1", Type: "single"}, wantStatus: domain.CampaignStatusScheduled, wantType: "single"},
		{name: "enviando", raw: acdomain.Campaign{Status: "2"}, wantStatus: domain.CampaignStatusSending},
		{name: "pausada", raw: acdomain.Campaign{Status: "3"}, wantStatus: domain.CampaignStatusPaused},
		{name: "parada", raw: acdomain.Campaign{Status: "4"}, wantStatus: domain.CampaignStatusStopped},
		{name: "concluída", raw: acdomain.Campaign{Status: "5", Type: "single"}, wantStatus: domain.CampaignStatusCompleted, wantType: "single"},
		{name: "status fora do mapa", raw: acdomain.Campaign{Status: "9"}, wantStatus: domain.CampaignStatusUnknown},
		{name: "status ausente", raw: acdomain.Campaign{}, wantStatus: domain.CampaignStatusUnknown},
		{name: "flag automation sobrescreve status", raw: acdomain.Campaign{Status: "5", Type: "single", Automation: "1"}, wantStatus: domain.CampaignStatusAutomation, wantType: "automation", wantAuto: true},
		{name: "seriesid preenchido indica automação", raw: acdomain.Campaign{Status: "1", SeriesID: "12"}, wantStatus: domain.CampaignStatusAutomation, wantType: "automation", wantAuto: true},
		{name: "seriesid zero não indica automação", raw: acdomain.Campaign{Status: "5", SeriesID: "0"}, wantStatus: domain.CampaignStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCampaign(tt.raw, "acc-1")
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantAuto, got.IsAutomation)
			assert.Equal(t, "acc-1", got.AccountID)
		})
	}
}

func TestNormalizeCampaign_Counters(t *testing.T) {
	raw := acdomain.Campaign{
		ID:               "10",
		Name:             "[SK] Email 00",
		Status:           "5",
		SendAmt:          "1000",
		Opens:            "500",
		UniqueOpens:      "400",
		LinkClicks:       "120",
		UniqueLinkClicks: "100",
		HardBounces:      "3",
		SoftBounces:      "7",
		Unsubscribes:     "2",
		SDate:            "2025-06-01 09:00:00",
		Raw:              []byte(`{"id":"10"}`),
	}

	got := NormalizeCampaign(raw, "acc-1")

	assert.Equal(t, 1000, got.Sent)
	assert.Equal(t, 500, got.Opens)
	assert.Equal(t, 400, got.UniqueOpens)
	assert.Equal(t, 120, got.Clicks)
	assert.Equal(t, 100, got.UniqueClicks)
	assert.Equal(t, 10, got.Bounces)
	assert.Equal(t, 2, got.Unsubscribes)
	assert.InDelta(t, 0.4, got.OpenRate, 1e-9)
	assert.InDelta(t, 0.1, got.ClickRate, 1e-9)
	assert.InDelta(t, 0.25, got.ClickToOpenRate, 1e-9)
	require.NotNil(t, got.SendDate)
	assert.Equal(t, "2025-06-01", got.SendDate.Format(time.DateOnly))
	assert.JSONEq(t, `{"id":"10"}`, string(got.RawPayload))
}

func TestNormalizeCampaign_ZeroDivision(t *testing.T) {
	tests := []struct {
		name string
		raw  acdomain.Campaign
	}{
		{name: "sem envios", raw: acdomain.Campaign{SendAmt: "0", UniqueOpens: "5", UniqueLinkClicks: "2"}},
		{name: "contadores vazios", raw: acdomain.Campaign{}},
		{name: "contadores inválidos", raw: acdomain.Campaign{SendAmt: "abc", UniqueOpens: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCampaign(tt.raw, "acc-1")
			assert.Zero(t, got.OpenRate)
			assert.Zero(t, got.ClickRate)
			assert.Nil(t, got.SendDate)
		})
	}

	got := NormalizeCampaign(acdomain.Campaign{SendAmt: "10", UniqueOpens: "0", UniqueLinkClicks: "0"}, "acc-1")
	assert.Zero(t, got.ClickToOpenRate)
}

func TestNormalizeList(t *testing.T) {
	got := NormalizeList(acdomain.List{ID: "3", Name: "Clientes", SubscriberCount: "250"}, "acc-1")
	require.NotNil(t, got.ActiveContacts)
	require.NotNil(t, got.TotalContacts)
	assert.Equal(t, 250, *got.ActiveContacts)
	assert.Equal(t, 250, *got.TotalContacts)

	empty := NormalizeList(acdomain.List{ID: "4", Name: "Vazia"}, "acc-1")
	assert.Nil(t, empty.ActiveContacts)
	assert.Nil(t, empty.TotalContacts)
}

func TestNormalizeAutomation(t *testing.T) {
	tests := []struct {
		name          string
		raw           acdomain.Automation
		wantStatus    domain.AutomationStatus
		wantActive    int
		wantCompleted int
	}{
		{name: "ativa", raw: acdomain.Automation{Status: "1", Entered: "100", Exited: "40"}, wantStatus: domain.AutomationStatusActive, wantActive: 60, wantCompleted: 40},
		{name: "inativa", raw: acdomain.Automation{Status: "2", Entered: "10", Exited: "10"}, wantStatus: domain.AutomationStatusInactive, wantActive: 0, wantCompleted: 10},
		{name: "saídas maiores que entradas", raw: acdomain.Automation{Status: "1", Entered: "5", Exited: "8"}, wantStatus: domain.AutomationStatusActive, wantActive: 0, wantCompleted: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAutomation(tt.raw, "acc-1")
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantActive, got.Active)
			assert.Equal(t, tt.wantCompleted, got.Completed)
		})
	}
}

func TestNormalizeMessage(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		raw         acdomain.Message
		wantOpened  bool
		wantClicked bool
		wantBounced bool
		wantSentAt  time.Time
	}{
		{
			name:       "flags por contador",
			raw:        acdomain.Message{ID: "1", CampaignID: "5", CDate: "2025-06-01T10:00:00Z", OpenedCount: "2", ClickedCount: "1"},
			wantOpened: true, wantClicked: true,
			wantSentAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:        "flags booleanas",
			raw:         acdomain.Message{ID: "2", Sent: "2025-06-02 08:00:00", Opened: "true", Bounced: "1"},
			wantOpened:  true,
			wantBounced: true,
			wantSentAt:  time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
		},
		{
			name:        "bounce_type preenchido",
			raw:         acdomain.Message{ID: "3", BounceType: "hard"},
			wantBounced: true,
			wantSentAt:  now,
		},
		{
			name:       "sem interação",
			raw:        acdomain.Message{ID: "4", Opened: "0", OpenedCount: "0"},
			wantSentAt: now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeMessage(tt.raw, "acc-1", now)
			assert.Equal(t, tt.wantOpened, got.WasOpened)
			assert.Equal(t, tt.wantClicked, got.WasClicked)
			assert.Equal(t, tt.wantBounced, got.WasBounced)
			assert.True(t, tt.wantSentAt.Equal(got.SentAt))
		})
	}

	withContact := NormalizeMessage(acdomain.Message{ID: "5", ContactID: "77"}, "acc-1", now)
	require.NotNil(t, withContact.ContactID)
	assert.Equal(t, "77", *withContact.ContactID)
	assert.Nil(t, NormalizeMessage(acdomain.Message{ID: "6"}, "acc-1", now).ContactID)
}
