package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		pokeapiRequestsTotal,
		pokeapiLatencyMs,
		lookupsTotal,
	)
}

var (
	pokeapiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokeapi_requests_total",
			Help: "Upstream PokeAPI calls by endpoint and outcome.",
		},
		[]string{"endpoint", "result"},
	)

	pokeapiLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokeapi_request_latency_ms",
			Help:    "PokeAPI call latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000},
		},
		[]string{"endpoint"},
	)

	lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookups_total",
			Help: "Species lookups by outcome.",
		},
		[]string{"result"}, // ok, canceled, not_found, transport, malformed, decode, other
	)
)

// ObservePokeAPICall records one upstream request. endpoint is "pokemon" or "type".
func ObservePokeAPICall(endpoint, result string, elapsed time.Duration) {
	pokeapiRequestsTotal.WithLabelValues(norm(endpoint), norm(result)).Inc()
	pokeapiLatencyMs.WithLabelValues(norm(endpoint)).Observe(float64(elapsed.Milliseconds()))
}

func IncLookup(result string) {
	lookupsTotal.WithLabelValues(norm(result)).Inc()
}
