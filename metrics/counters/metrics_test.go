package counters

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountDecoded(t *testing.T) {
	counter := decodedCounter.WithLabelValues("Heartbeat", KindRequest)
	before := testutil.ToFloat64(counter)
	CountDecoded("Heartbeat", KindRequest)
	CountDecoded("Heartbeat", KindRequest)
	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestCountRejected(t *testing.T) {
	counter := rejectedCounter.WithLabelValues("Reset", KindResponse, "FormationViolation")
	before := testutil.ToFloat64(counter)
	CountRejected("Reset", KindResponse, "FormationViolation")
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestCountEncoded(t *testing.T) {
	counter := encodedCounter.WithLabelValues("Authorize", KindResponse)
	before := testutil.ToFloat64(counter)
	CountEncoded("Authorize", KindResponse)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestEmptyLabelsIgnored(t *testing.T) {
	decoded := testutil.CollectAndCount(decodedCounter)
	CountDecoded("", KindRequest)
	CountDecoded("Heartbeat", "")
	CountRejected("Reset", KindRequest, "")
	assert.Equal(t, decoded, testutil.CollectAndCount(decodedCounter))
	assert.Zero(t, testutil.ToFloat64(rejectedCounter.WithLabelValues("Reset", KindRequest, "")))
}
