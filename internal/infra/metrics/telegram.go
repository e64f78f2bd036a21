package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		telegramUpdatesReceivedTotal,
		telegramRepliesSentTotal,
	)
}

var (
	telegramUpdatesReceivedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_updates_received_total",
			Help: "Incoming updates by how they were routed.",
		},
		[]string{"kind"}, // start, query, ignored
	)

	telegramRepliesSentTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_replies_sent_total",
			Help: "Replies sent back to chats, labeled by send result.",
		},
		[]string{"result"}, // ok, error
	)
)

func IncTelegramUpdate(kind string) {
	telegramUpdatesReceivedTotal.WithLabelValues(norm(kind)).Inc()
}

func IncReplySent(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	telegramRepliesSentTotal.WithLabelValues(result).Inc()
}
