package acclient

import (
	"context"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
)

type rawSetter interface {
	SetRaw(raw []byte)
}

// pagerFor monta um Pager que lê a coleção key de endpoint
func pagerFor[T any](c *ACClient, endpoint, key string, base url.Values) *Pager[T] {
	fetch := func(ctx context.Context, limit, offset int) ([]T, int, bool, error) {
		query := url.Values{}
		for k, v := range base {
			query[k] = v
		}
		query.Set("limit", strconv.Itoa(limit))
		query.Set("offset", strconv.Itoa(offset))

		body, err := c.get(ctx, endpoint, query)
		if err != nil {
			return nil, 0, false, err
		}
		return decodePage[T](body, key)
	}
	return NewPager[T](fetch, c.cfg.PageSize)
}

func decodePage[T any](body []byte, key string) ([]T, int, bool, error) {
	var envelope map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, 0, false, errors.Wrapf(ErrInvalidResponse, "decodificando envelope de %s: %v", key, err)
	}

	var rawItems []jsoniter.RawMessage
	if data, ok := envelope[key]; ok && len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, &rawItems); err != nil {
			return nil, 0, false, errors.Wrapf(ErrInvalidResponse, "decodificando %s: %v", key, err)
		}
	}

	items := make([]T, 0, len(rawItems))
	for _, raw := range rawItems {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, 0, false, errors.Wrapf(ErrInvalidResponse, "decodificando item de %s: %v", key, err)
		}
		if s, ok := any(&item).(rawSetter); ok {
			s.SetRaw(append([]byte(nil), raw...))
		}
		items = append(items, item)
	}

	total, hasTotal := 0, false
	if data, ok := envelope["meta"]; ok {
		var meta acdomain.Meta
		if err := json.Unmarshal(data, &meta); err == nil && meta.Total != "" {
			if n, ok := meta.Total.Int(); ok {
				total, hasTotal = n, true
			}
		}
	}

	return items, total, hasTotal, nil
}
