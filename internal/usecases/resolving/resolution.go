package resolving

import "github.com/vfg2006/mail-insights-api/internal/domain"

// Resolution é o resultado da associação de uma automação.
// As únicas variantes são Resolved e Heuristic.
type Resolution interface {
	CampaignIDs() []string
	Source() domain.AssociationSource
	resolution()
}

// Resolved vem da relação explícita exposta pela API
type Resolved struct {
	IDs []string
}

func (r Resolved) CampaignIDs() []string            { return r.IDs }
func (Resolved) Source() domain.AssociationSource { return domain.AssociationSourceDirect }
func (Resolved) resolution()                      {}

type Rule string

const (
	RulePrefix       Rule = "prefix"
	RuleNameContains Rule = "name_contains"
	RuleNumericCode  Rule = "numeric_code"
)

// Heuristic é uma associação aproximada por nome. Zero IDs significa automação sem atividade.
type Heuristic struct {
	Rule Rule
	IDs  []string
}

func (h Heuristic) CampaignIDs() []string            { return h.IDs }
func (Heuristic) Source() domain.AssociationSource { return domain.AssociationSourceHeuristic }
func (Heuristic) resolution()                      {}
