package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EventsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chatcore_events_published_total",
		Help: "Delivery events published onto per-user channels.",
	}, []string{"table", "operation"})

	PublishFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chatcore_publish_failures_total",
		Help: "Delivery events that could not be published (write unaffected).",
	})

	OnlineConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chatcore_online_conns",
		Help: "Current live websocket connections.",
	})

	WSBackpressure = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chatcore_ws_backpressure_total",
		Help: "Total times a slow consumer's outbound queue was full.",
	})
)

func Register() {
	prometheus.MustRegister(
		EventsPublished,
		PublishFailures,
		OnlineConns,
		WSBackpressure,
	)
}
