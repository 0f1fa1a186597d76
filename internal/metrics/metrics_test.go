package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTrigger(t *testing.T) {
	assert.Equal(t, "automatic", Trigger(true))
	assert.Equal(t, "manual", Trigger(false))
}

func TestSyncRecordsCounter(t *testing.T) {
	before := testutil.ToFloat64(SyncRecords.WithLabelValues("lists"))
	SyncRecords.WithLabelValues("lists").Add(3)
	assert.Equal(t, before+3, testutil.ToFloat64(SyncRecords.WithLabelValues("lists")))
}
