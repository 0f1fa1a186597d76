package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/mail-insights-api/internal/domain"
)

func TestDedupeByKey(t *testing.T) {
	campaigns := []*domain.Campaign{
		{AccountID: "acc-1", ID: "1", Name: "primeira"},
		{AccountID: "acc-1", ID: "2", Name: "segunda"},
		{AccountID: "acc-1", ID: "1", Name: "primeira atualizada"},
		{AccountID: "acc-2", ID: "1", Name: "outra conta"},
	}

	got := dedupeByKey(campaigns, func(c *domain.Campaign) string { return c.AccountID + ":" + c.ID })

	assert.Len(t, got, 3)
	assert.Equal(t, "primeira atualizada", got[0].Name)
	assert.Equal(t, "segunda", got[1].Name)
	assert.Equal(t, "outra conta", got[2].Name)
}

func TestNullableHelpers(t *testing.T) {
	assert.Nil(t, rawJSON(nil))
	assert.Equal(t, `{"id":"1"}`, rawJSON([]byte(`{"id":"1"}`)))

	assert.Nil(t, nullableTime(nil))
	now := time.Now()
	assert.Equal(t, now, nullableTime(&now))

	assert.Nil(t, nullableInt(nil))
	n := 5
	assert.Equal(t, 5, nullableInt(&n))

	assert.Nil(t, intPtr(sql.NullInt64{}))
	assert.Equal(t, 7, *intPtr(sql.NullInt64{Int64: 7, Valid: true}))
	assert.Nil(t, stringPtr(sql.NullString{}))
	assert.Nil(t, timePtr(sql.NullTime{}))
}

func TestIsOrderable(t *testing.T) {
	assert.True(t, IsOrderable("openRate"))
	assert.True(t, IsOrderable("sent"))
	assert.False(t, IsOrderable("1; DROP TABLE campaigns"))
	assert.False(t, IsOrderable(""))
}
