package resolving

import (
	"context"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/mail-insights-api/internal/domain"
)

var numericCodePattern = regexp.MustCompile(`^(\d+)`)

// DirectLookup consulta a relação automação -> campanhas na origem
type DirectLookup interface {
	GetAutomationCampaigns(ctx context.Context, automationID string) ([]string, error)
}

type Resolver struct {
	lookup  DirectLookup
	buckets *Buckets
}

// New cria um resolver para uma conta. lookup pode ser nil para usar só a heurística.
func New(lookup DirectLookup, buckets *Buckets) *Resolver {
	if buckets == nil {
		buckets = NewBuckets(nil)
	}
	return &Resolver{lookup: lookup, buckets: buckets}
}

// Resolve tenta primeiro a relação direta e cai para a heurística por nome
func (r *Resolver) Resolve(ctx context.Context, automation *domain.Automation) Resolution {
	if r.lookup != nil {
		ids, err := r.lookup.GetAutomationCampaigns(ctx, automation.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":    automation.AccountID,
				"automation_id": automation.ID,
			}).WithError(err).Warn("Relação direta indisponível, usando heurística")
		} else if len(ids) > 0 {
			return Resolved{IDs: ids}
		}
	}

	return r.heuristic(automation.Name)
}

func (r *Resolver) heuristic(name string) Heuristic {
	if prefix, ok := ExtractPrefix(name); ok {
		lowerPrefix := strings.ToLower(prefix)
		ids := newIDSet()
		for _, c := range r.buckets.WithPrefix(prefix) {
			if strings.HasPrefix(strings.ToLower(c.Name), lowerPrefix) {
				ids.add(c.ID)
			}
		}
		return Heuristic{Rule: RulePrefix, IDs: ids.list()}
	}

	// sem prefixo a busca cobre todas as campanhas de automação da conta
	lowerName := strings.ToLower(strings.TrimSpace(name))
	byName := newIDSet()
	if lowerName != "" {
		for _, c := range r.buckets.All() {
			if strings.Contains(strings.ToLower(c.Name), lowerName) {
				byName.add(c.ID)
			}
		}
	}

	byCode := newIDSet()
	if match := numericCodePattern.FindStringSubmatch(name); match != nil {
		needle := "email " + match[1]
		for _, c := range r.buckets.All() {
			if strings.Contains(strings.ToLower(c.Name), needle) {
				byCode.add(c.ID)
			}
		}
	}

	if len(byName.ids) == 0 && len(byCode.ids) > 0 {
		return Heuristic{Rule: RuleNumericCode, IDs: byCode.list()}
	}

	for _, id := range byCode.ids {
		byName.add(id)
	}
	return Heuristic{Rule: RuleNameContains, IDs: byName.list()}
}

// Links converte a resolução nos vínculos persistidos
func Links(automation *domain.Automation, res Resolution) []*domain.AutomationCampaign {
	ids := res.CampaignIDs()
	links := make([]*domain.AutomationCampaign, 0, len(ids))
	for _, id := range ids {
		links = append(links, &domain.AutomationCampaign{
			AccountID:    automation.AccountID,
			AutomationID: automation.ID,
			CampaignID:   id,
			Source:       res.Source(),
		})
	}
	return links
}

type idSet struct {
	seen map[string]struct{}
	ids  []string
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[string]struct{})}
}

func (s *idSet) add(id string) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *idSet) list() []string {
	if s.ids == nil {
		return []string{}
	}
	return s.ids
}
