package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(workerTasksTotal) }

var workerTasksTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "worker_tasks_total",
		Help: "Tasks run by the update worker pool, labeled by outcome.",
	},
	[]string{"result"}, // completed, failed, panicked
)

func IncWorkerTask(result string) {
	workerTasksTotal.WithLabelValues(norm(result)).Inc()
}
