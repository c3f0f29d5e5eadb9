package counters

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Kind labels, one per message direction within an exchange.
const (
	KindRequest  = "request"
	KindResponse = "response"
)

var decodedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ocpp",
	Name:      "messages_decoded_total",
	Help:      "Total number of payloads decoded and validated successfully.",
}, []string{"action", "kind"})

var rejectedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ocpp",
	Name:      "messages_rejected_total",
	Help:      "Total number of payloads rejected, by OCPP-J error code.",
}, []string{"action", "kind", "code"})

var encodedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ocpp",
	Name:      "messages_encoded_total",
	Help:      "Total number of messages validated and encoded.",
}, []string{"action", "kind"})

func CountDecoded(action, kind string) {
	if len(action) == 0 || len(kind) == 0 {
		return
	}
	decodedCounter.With(prometheus.Labels{"action": action, "kind": kind}).Inc()
}

func CountRejected(action, kind, code string) {
	if len(action) == 0 || len(kind) == 0 || len(code) == 0 {
		return
	}
	rejectedCounter.With(
		prometheus.Labels{
			"action": action,
			"kind":   kind,
			"code":   code,
		}).Inc()
}

func CountEncoded(action, kind string) {
	if len(action) == 0 || len(kind) == 0 {
		return
	}
	encodedCounter.With(prometheus.Labels{"action": action, "kind": kind}).Inc()
}
