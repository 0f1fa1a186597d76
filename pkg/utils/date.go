package utils

import (
	"strings"
	"time"
)

// layouts aceitos nas datas vindas do ActiveCampaign, em ordem de tentativa
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseTimestamp interpreta datas da API. Valores vazios ou ilegíveis devolvem nil.
func ParseTimestamp(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(value, "0000-00-00") {
		return nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDate devolve a data no formato YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
