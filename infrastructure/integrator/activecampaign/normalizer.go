package activecampaign

import (
	"time"

	"github.com/sirupsen/logrus"

	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/pkg/utils"
)

var campaignStatusMap = map[int]domain.CampaignStatus{
	0: domain.CampaignStatusDraft,
	1: domain.CampaignStatusScheduled,
	2: domain.CampaignStatusSending,
	3: domain.CampaignStatusPaused,
	4: domain.CampaignStatusStopped,
	5: domain.CampaignStatusCompleted,
}

// NormalizeCampaign converte a campanha da API para o modelo interno.
// Taxas são sempre recalculadas a partir dos contadores.
func NormalizeCampaign(raw acdomain.Campaign, accountID string) *domain.Campaign {
	isAutomation := IsAutomationCampaign(raw)

	status := domain.CampaignStatusUnknown
	if raw.Status != "" {
		if code, ok := raw.Status.Int(); ok {
			if mapped, found := campaignStatusMap[code]; found {
				status = mapped
			}
		}
	}

	campaignType := raw.Type
	if isAutomation {
		status = domain.CampaignStatusAutomation
		campaignType = domain.CampaignTypeAutomation
	}

	sent := toInt(raw.SendAmt, "send_amt", raw.ID)
	uniqueOpens := toInt(raw.UniqueOpens, "uniqueopens", raw.ID)
	uniqueClicks := toInt(raw.UniqueLinkClicks, "uniquelinkclicks", raw.ID)

	return &domain.Campaign{
		ID:              raw.ID,
		AccountID:       accountID,
		Name:            raw.Name,
		Status:          status,
		Type:            campaignType,
		IsAutomation:    isAutomation,
		SendDate:        utils.ParseTimestamp(raw.SDate),
		Sent:            sent,
		Opens:           toInt(raw.Opens, "opens", raw.ID),
		UniqueOpens:     uniqueOpens,
		Clicks:          toInt(raw.LinkClicks, "linkclicks", raw.ID),
		UniqueClicks:    uniqueClicks,
		Bounces:         toInt(raw.HardBounces, "hardbounces", raw.ID) + toInt(raw.SoftBounces, "softbounces", raw.ID),
		Unsubscribes:    toInt(raw.Unsubscribes, "unsubscribes", raw.ID),
		OpenRate:        utils.Ratio(uniqueOpens, sent),
		ClickRate:       utils.Ratio(uniqueClicks, sent),
		ClickToOpenRate: utils.Ratio(uniqueClicks, uniqueOpens),
		RawPayload:      raw.Raw,
	}
}

// IsAutomationCampaign detecta campanhas disparadas por automação
func IsAutomationCampaign(raw acdomain.Campaign) bool {
	if raw.Automation.String() == "1" {
		return true
	}
	series := raw.SeriesID.String()
	return series != "" && series != "0"
}

// NormalizeList usa subscriber_count como total e ativos; a API não diferencia os dois
func NormalizeList(raw acdomain.List, accountID string) *domain.List {
	var contacts *int
	if raw.SubscriberCount != "" {
		n := toInt(raw.SubscriberCount, "subscriber_count", raw.ID)
		contacts = &n
	}

	var total *int
	if contacts != nil {
		t := *contacts
		total = &t
	}

	return &domain.List{
		ID:             raw.ID,
		AccountID:      accountID,
		Name:           raw.Name,
		ActiveContacts: contacts,
		TotalContacts:  total,
		RawPayload:     raw.Raw,
	}
}

func NormalizeAutomation(raw acdomain.Automation, accountID string) *domain.Automation {
	entered := toInt(raw.Entered, "entered", raw.ID)
	exited := toInt(raw.Exited, "exited", raw.ID)

	status := domain.AutomationStatusInactive
	if raw.Status.String() == "1" {
		status = domain.AutomationStatusActive
	}

	return &domain.Automation{
		ID:        raw.ID,
		AccountID: accountID,
		Name:      raw.Name,
		Status:    status,
		Entered:   entered,
		// aproximação: quem saiu concluiu
		Completed:  exited,
		Active:     max(0, entered-exited),
		RawPayload: raw.Raw,
	}
}

// NormalizeMessage usa cdate, depois sent e por fim now como data de envio
func NormalizeMessage(raw acdomain.Message, accountID string, now time.Time) *domain.CampaignMessage {
	sentAt := now
	if t := utils.ParseTimestamp(raw.CDate); t != nil {
		sentAt = *t
	} else if t := utils.ParseTimestamp(raw.Sent); t != nil {
		sentAt = *t
	}

	var contactID *string
	if c := raw.ContactID.String(); c != "" {
		contactID = &c
	}

	return &domain.CampaignMessage{
		ID:         raw.ID,
		AccountID:  accountID,
		CampaignID: raw.CampaignID.String(),
		ContactID:  contactID,
		SentAt:     sentAt,
		WasOpened:  raw.Opened.Truthy() || toInt(raw.OpenedCount, "opened_count", raw.ID) > 0,
		WasClicked: raw.Clicked.Truthy() || toInt(raw.ClickedCount, "clicked_count", raw.ID) > 0,
		WasBounced: raw.Bounced.Truthy() || raw.BounceType != "",
		RawPayload: raw.Raw,
	}
}

func toInt(v acdomain.FlexString, field, id string) int {
	n, ok := v.Int()
	if !ok {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"id":    id,
			"value": v.String(),
		}).Warn("Valor numérico inválido, usando 0")
		return 0
	}
	return n
}
