package resolving

import (
	"regexp"
	"strings"

	"github.com/vfg2006/mail-insights-api/internal/domain"
)

// prefixo entre colchetes no início do nome, ex: [SK] ou [SHEIN-BV]
var prefixPattern = regexp.MustCompile(`^(\[[\w\s-]+\])`)

// ExtractPrefix devolve o prefixo entre colchetes do nome, se houver
func ExtractPrefix(name string) (string, bool) {
	match := prefixPattern.FindStringSubmatch(name)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// Buckets agrupa as campanhas de automação de uma conta pelo prefixo em minúsculas.
// Montado uma vez por passada e reutilizado para todas as automações da conta.
type Buckets struct {
	byPrefix map[string][]*domain.Campaign
	noPrefix []*domain.Campaign
	all      []*domain.Campaign
}

// NewBuckets considera apenas campanhas originadas por automação
func NewBuckets(campaigns []*domain.Campaign) *Buckets {
	b := &Buckets{byPrefix: make(map[string][]*domain.Campaign)}
	for _, c := range campaigns {
		if c == nil || !c.IsAutomation {
			continue
		}
		b.all = append(b.all, c)
		if prefix, ok := ExtractPrefix(c.Name); ok {
			key := strings.ToLower(prefix)
			b.byPrefix[key] = append(b.byPrefix[key], c)
			continue
		}
		b.noPrefix = append(b.noPrefix, c)
	}
	return b
}

func (b *Buckets) WithPrefix(prefix string) []*domain.Campaign {
	return b.byPrefix[strings.ToLower(prefix)]
}

func (b *Buckets) WithoutPrefix() []*domain.Campaign {
	return b.noPrefix
}

// All devolve todas as campanhas candidatas na ordem de entrada, com ou sem prefixo
func (b *Buckets) All() []*domain.Campaign {
	return b.all
}

// Len é o total de campanhas candidatas
func (b *Buckets) Len() int {
	return len(b.all)
}
