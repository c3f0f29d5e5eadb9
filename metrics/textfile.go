package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile stores every registered metric in path using the Prometheus text format,
// ready for the node_exporter textfile collector. An empty path disables the export.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
