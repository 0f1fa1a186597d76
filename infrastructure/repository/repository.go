package repository

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// rawJSON converte o payload para string; []byte seria enviado como bytea pelo driver
func rawJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullableInt(n *int) interface{} {
	if n == nil {
		return nil
	}
	return *n
}

// dedupeByKey mantém a última ocorrência de cada chave, na ordem da primeira.
// O Postgres rejeita ON CONFLICT que afeta a mesma linha duas vezes no mesmo comando.
func dedupeByKey[T any](items []T, key func(T) string) []T {
	index := make(map[string]int, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if i, ok := index[k]; ok {
			out[i] = item
			continue
		}
		index[k] = len(out)
		out = append(out, item)
	}
	return out
}

func stringArray(values []string) interface{} {
	return pq.StringArray(values)
}

// scanner cobre *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}
