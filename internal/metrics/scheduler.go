package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	schedulerTaskRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "scheduler",
		Name:      "task_runs_total",
		Help:      "Count of snapshot task runs.",
	}, []string{"task", "status"})

	schedulerTaskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "scheduler",
		Name:      "task_duration_seconds",
		Help:      "Duration of snapshot task runs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"task", "status"})

	schedulerLastSuccess = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "scheduler",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successful run per task.",
	}, []string{"task"})
)

// Scheduler tracks metrics for periodic snapshot tasks.
type Scheduler struct{}

// NewScheduler constructs a Scheduler collector.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// ObserveTask records one task run.
func (m Scheduler) ObserveTask(task string, err error, started time.Time) {
	status := statusOf(err)
	schedulerTaskRunsTotal.WithLabelValues(task, status).Inc()
	schedulerTaskDuration.WithLabelValues(task, status).Observe(time.Since(started).Seconds())
	if err == nil {
		schedulerLastSuccess.WithLabelValues(task).SetToCurrentTime()
	}
}
