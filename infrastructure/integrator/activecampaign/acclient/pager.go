package acclient

import "context"

// PageFetcher busca uma página a partir do offset. total só vale quando hasTotal é verdadeiro.
type PageFetcher[T any] func(ctx context.Context, limit, offset int) (items []T, total int, hasTotal bool, err error)

// Pager percorre uma coleção paginada sob demanda.
// A próxima página só é requisitada quando Next é chamado.
type Pager[T any] struct {
	fetch      PageFetcher[T]
	pageSize   int
	offset     int
	pageOffset int
	page       []T
	err        error
	done       bool
}

func NewPager[T any](fetch PageFetcher[T], pageSize int) *Pager[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager[T]{fetch: fetch, pageSize: pageSize}
}

func (p *Pager[T]) Next(ctx context.Context) bool {
	if p.done || p.err != nil {
		return false
	}
	if err := ctx.Err(); err != nil {
		p.err = err
		return false
	}

	items, total, hasTotal, err := p.fetch(ctx, p.pageSize, p.offset)
	if err != nil {
		p.err = err
		p.page = nil
		return false
	}
	if len(items) == 0 {
		p.done = true
		p.page = nil
		return false
	}

	p.page = items
	p.pageOffset = p.offset
	p.offset += len(items)

	// página curta encerra mesmo quando meta.total promete mais itens
	p.done = len(items) < p.pageSize || (hasTotal && p.offset >= total)
	return true
}

// Page devolve os itens da última página obtida por Next
func (p *Pager[T]) Page() []T {
	return p.page
}

func (p *Pager[T]) Err() error {
	return p.err
}

// Offset é a posição do primeiro item da página atual
func (p *Pager[T]) Offset() int {
	return p.pageOffset
}

// Collect consome o pager inteiro
func Collect[T any](ctx context.Context, p *Pager[T]) ([]T, error) {
	var all []T
	for p.Next(ctx) {
		all = append(all, p.Page()...)
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return all, nil
}
