package transport

import (
	"sync"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServicePrefix prefixes every per-task health service name.
const HealthServicePrefix = "telemetry."

// HealthReporter mirrors scheduler task outcomes into the gRPC health
// service. The overall status ("") is SERVING only while every reported
// task is serving.
type HealthReporter struct {
	server *health.Server

	mu    sync.Mutex
	tasks map[string]bool
}

func NewHealthReporter(server *health.Server) *HealthReporter {
	server.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return &HealthReporter{server: server, tasks: map[string]bool{}}
}

// SetServing records the latest outcome of task.
func (r *HealthReporter) SetServing(task string, serving bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[task] = serving
	r.server.SetServingStatus(HealthServicePrefix+task, status(serving))

	overall := true
	for _, ok := range r.tasks {
		overall = overall && ok
	}
	r.server.SetServingStatus("", status(overall))
}

// Shutdown marks every service NOT_SERVING.
func (r *HealthReporter) Shutdown() {
	r.server.Shutdown()
}

func status(serving bool) healthpb.HealthCheckResponse_ServingStatus {
	if serving {
		return healthpb.HealthCheckResponse_SERVING
	}
	return healthpb.HealthCheckResponse_NOT_SERVING
}
