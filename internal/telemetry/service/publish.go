package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
)

// publish hands payload to p on a context detached from ctx's cancellation so
// a shutdown never interrupts a publish halfway. timeout bounds the call.
func publish(ctx context.Context, p Publisher, timeout time.Duration, topic model.Topic, payload any) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	return p.Publish(ctx, topic, payload)
}
