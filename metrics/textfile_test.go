package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocpp16/metrics/counters"
)

func TestWriteTextfile(t *testing.T) {
	counters.CountDecoded("BootNotification", counters.KindRequest)
	path := filepath.Join(t.TempDir(), "ocpp.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ocpp_messages_decoded_total{action="BootNotification",kind="request"}`)
}

func TestWriteTextfileDisabled(t *testing.T) {
	assert.NoError(t, WriteTextfile(""))
}
