package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/mail-insights-api/internal/domain"
)

var errInvalidWindow = errors.New("from deve ser anterior ou igual a to")

func csv(values url.Values, key string) []string {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// listKeys lê listas no formato accountId:listId
func listKeys(values url.Values) ([]domain.ListKey, error) {
	raw := csv(values, "listIds")
	if len(raw) == 0 {
		return nil, nil
	}

	keys := make([]domain.ListKey, 0, len(raw))
	for _, item := range raw {
		accountID, listID, ok := strings.Cut(item, ":")
		if !ok || accountID == "" || listID == "" {
			return nil, fmt.Errorf("lista inválida %q, esperado accountId:listId", item)
		}
		keys = append(keys, domain.ListKey{AccountID: accountID, ListID: listID})
	}
	return keys, nil
}

// window exige from e to juntos; nenhum dos dois significa modo acumulado
func window(values url.Values) (*domain.DateWindow, error) {
	rawFrom, rawTo := values.Get("from"), values.Get("to")
	if rawFrom == "" && rawTo == "" {
		return nil, nil
	}
	if rawFrom == "" || rawTo == "" {
		return nil, errors.New("from e to devem ser informados juntos")
	}

	from, err := time.Parse(time.DateOnly, rawFrom)
	if err != nil {
		return nil, fmt.Errorf("from inválido: %w", err)
	}
	to, err := time.Parse(time.DateOnly, rawTo)
	if err != nil {
		return nil, fmt.Errorf("to inválido: %w", err)
	}
	if to.Before(from) {
		return nil, errInvalidWindow
	}

	return &domain.DateWindow{From: from, To: to}, nil
}

func limit(values url.Values) (int, error) {
	raw := values.Get("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("limit inválido: %q", raw)
	}
	return n, nil
}

func metricsFilter(values url.Values) (domain.MetricsFilter, error) {
	keys, err := listKeys(values)
	if err != nil {
		return domain.MetricsFilter{}, err
	}
	w, err := window(values)
	if err != nil {
		return domain.MetricsFilter{}, err
	}

	return domain.MetricsFilter{
		AccountIDs:  csv(values, "accountIds"),
		ListKeys:    keys,
		Statuses:    csv(values, "status"),
		CampaignIDs: csv(values, "campaignIds"),
		Window:      w,
	}, nil
}
