package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics são os contadores expostos em /metrics na superfície local.
type Metrics struct {
	GatewayRequests *prometheus.CounterVec
	RealtimeEvents  *prometheus.CounterVec
	StoreMutations  *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		GatewayRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uturns_agent",
			Name:      "gateway_requests_total",
			Help:      "Chamadas de gateway por endpoint e resultado.",
		}, []string{"endpoint", "outcome"}),

		RealtimeEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uturns_agent",
			Name:      "realtime_events_total",
			Help:      "Eventos recebidos no canal realtime, por nome.",
		}, []string{"event"}),

		StoreMutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uturns_agent",
			Name:      "store_mutations_total",
			Help:      "Mutações aplicadas nos stores, por origem.",
		}, []string{"store", "source"}),
	}
}
